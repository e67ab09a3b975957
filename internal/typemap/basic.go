package typemap

import (
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"

	"github.com/tsdecl/tsdecl/internal/decl"
	"github.com/tsdecl/tsdecl/internal/errors"
)

// Basic is a syntax-only mapper: it reads type nodes structurally and never
// consults the checker. Unrepresentable types degrade to the dynamic type.
type Basic struct {
	// typeParams holds the generic parameter names currently in scope, so
	// bare references to them survive as-is instead of being treated as
	// nominal type references.
	typeParams map[string]struct{}
}

// NewBasic creates a mapper with no generic parameters in scope.
func NewBasic() *Basic {
	return &Basic{typeParams: make(map[string]struct{})}
}

var _ Mapper = (*Basic)(nil)

// MapType converts a type node. A nil node maps to the dynamic type.
func (b *Basic) MapType(node *ast.Node) decl.TypeExpr {
	if node == nil {
		return decl.Dynamic
	}

	switch node.Kind {
	case ast.KindStringKeyword:
		return decl.String
	case ast.KindNumberKeyword:
		return decl.Number
	case ast.KindBooleanKeyword:
		return decl.Boolean
	case ast.KindVoidKeyword:
		return decl.Unit
	case ast.KindAnyKeyword, ast.KindUnknownKeyword, ast.KindObjectKeyword,
		ast.KindNeverKeyword, ast.KindSymbolKeyword, ast.KindBigIntKeyword,
		ast.KindUndefinedKeyword:
		return decl.Dynamic

	case ast.KindLiteralType:
		return b.mapLiteralType(node.AsLiteralTypeNode().Literal)

	case ast.KindArrayType:
		elem := b.MapType(node.AsArrayTypeNode().ElementType)
		return "Array<" + elem + ">"

	case ast.KindTypeReference:
		return b.mapTypeReference(node.AsTypeReferenceNode())

	case ast.KindUnionType:
		return b.mapUnion(node.AsUnionTypeNode().Types.Nodes)

	case ast.KindParenthesizedType:
		return b.MapType(node.AsParenthesizedTypeNode().Type)

	case ast.KindFunctionType:
		sigs, err := b.MapCallSignature(node)
		if err != nil || len(sigs) == 0 {
			return decl.Dynamic
		}
		return functionTypeExpr(sigs[0])

	default:
		// Tuples, type literals, mapped/conditional types, typeof queries
		// and the rest have no structural equivalent in the target model.
		return decl.Dynamic
	}
}

// Nullable wraps a type expression so it also admits null/undefined. The
// dynamic type already does.
func (b *Basic) Nullable(t decl.TypeExpr) decl.TypeExpr {
	if t == decl.Dynamic || strings.HasSuffix(string(t), "?") {
		return t
	}
	return t + "?"
}

func (b *Basic) mapLiteralType(lit *ast.Node) decl.TypeExpr {
	if lit == nil {
		return decl.Dynamic
	}
	switch lit.Kind {
	case ast.KindStringLiteral, ast.KindNoSubstitutionTemplateLiteral:
		return decl.String
	case ast.KindNumericLiteral, ast.KindPrefixUnaryExpression:
		return decl.Number
	case ast.KindTrueKeyword, ast.KindFalseKeyword:
		return decl.Boolean
	default:
		return decl.Dynamic
	}
}

func (b *Basic) mapTypeReference(ref *ast.TypeReferenceNode) decl.TypeExpr {
	name := entityNameText(ref.TypeName)
	if name == "" {
		return decl.Dynamic
	}
	if _, ok := b.typeParams[name]; ok {
		return decl.TypeExpr(name)
	}
	if ref.TypeArguments == nil || len(ref.TypeArguments.Nodes) == 0 {
		return decl.TypeExpr(name)
	}
	args := make([]string, 0, len(ref.TypeArguments.Nodes))
	for _, arg := range ref.TypeArguments.Nodes {
		args = append(args, string(b.MapType(arg)))
	}
	return decl.TypeExpr(name + "<" + strings.Join(args, ", ") + ">")
}

// mapUnion collapses a union type to a single expression. Null and undefined
// members turn into nullability; beyond that the union survives only when all
// members map to the same expression (e.g. a union of string literals).
func (b *Basic) mapUnion(members []*ast.Node) decl.TypeExpr {
	nullable := false
	var mapped []decl.TypeExpr
	for _, m := range members {
		if isNullish(m) {
			nullable = true
			continue
		}
		mapped = append(mapped, b.MapType(m))
	}
	if len(mapped) == 0 {
		return decl.Dynamic
	}
	result := mapped[0]
	for _, t := range mapped[1:] {
		if t != result {
			result = decl.Dynamic
			break
		}
	}
	if nullable {
		return b.Nullable(result)
	}
	return result
}

func isNullish(node *ast.Node) bool {
	switch node.Kind {
	case ast.KindUndefinedKeyword:
		return true
	case ast.KindLiteralType:
		lit := node.AsLiteralTypeNode().Literal
		return lit != nil && lit.Kind == ast.KindNullKeyword
	default:
		return false
	}
}

// MapCallSignature converts a function-like node into call signatures. Basic
// never fans out: optional parameters are carried as flags on the single
// translated signature.
func (b *Basic) MapCallSignature(node *ast.Node) ([]decl.CallSignature, error) {
	paramList, returnType, err := signatureParts(node)
	if err != nil {
		return nil, err
	}

	var params []decl.Parameter
	if paramList != nil {
		for _, p := range paramList.Nodes {
			param, err := b.mapParameter(p)
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}
	}

	ret := b.MapType(returnType)
	if returnType == nil && node.Kind == ast.KindConstructor {
		ret = decl.Unit
	}

	return []decl.CallSignature{{Parameters: params, ReturnType: ret}}, nil
}

func (b *Basic) mapParameter(node *ast.Node) (decl.Parameter, error) {
	p := node.AsParameterDeclaration()
	nameNode := p.Name()
	if nameNode == nil || nameNode.Kind != ast.KindIdentifier {
		return decl.Parameter{}, errors.Newf("unsupported parameter name node in signature")
	}

	variadic := p.DotDotDotToken != nil
	paramType := p.Type
	if variadic && paramType != nil && paramType.Kind == ast.KindArrayType {
		paramType = paramType.AsArrayTypeNode().ElementType
	}

	return decl.Parameter{
		Name:     nameNode.Text(),
		Type:     b.MapType(paramType),
		Optional: p.QuestionToken != nil || p.Initializer != nil,
		Variadic: variadic,
	}, nil
}

// WithTypeParameters returns a mapper scoped to the given generic parameter
// list, plus the translated parameters.
func (b *Basic) WithTypeParameters(params *ast.NodeList) (Mapper, []decl.TypeParameter) {
	if params == nil || len(params.Nodes) == 0 {
		return b, nil
	}

	scoped := &Basic{typeParams: make(map[string]struct{}, len(b.typeParams)+len(params.Nodes))}
	for name := range b.typeParams {
		scoped.typeParams[name] = struct{}{}
	}

	var translated []decl.TypeParameter
	for _, p := range params.Nodes {
		tp := p.AsTypeParameter()
		name := tp.Name().Text()
		scoped.typeParams[name] = struct{}{}
		out := decl.TypeParameter{Name: name}
		if tp.Constraint != nil {
			out.Constraint = scoped.MapType(tp.Constraint)
		}
		translated = append(translated, out)
	}
	return scoped, translated
}

// signatureParts extracts the parameter list and return type node from a
// function-like declaration.
func signatureParts(node *ast.Node) (*ast.NodeList, *ast.Node, error) {
	switch node.Kind {
	case ast.KindFunctionDeclaration:
		fn := node.AsFunctionDeclaration()
		return fn.Parameters, fn.Type, nil
	case ast.KindMethodSignature:
		ms := node.AsMethodSignatureDeclaration()
		return ms.Parameters, ms.Type, nil
	case ast.KindMethodDeclaration:
		md := node.AsMethodDeclaration()
		return md.Parameters, md.Type, nil
	case ast.KindCallSignature:
		cs := node.AsCallSignatureDeclaration()
		return cs.Parameters, cs.Type, nil
	case ast.KindConstructor:
		ctor := node.AsConstructorDeclaration()
		return ctor.Parameters, ctor.Type, nil
	case ast.KindFunctionType:
		ft := node.AsFunctionTypeNode()
		return ft.Parameters, ft.Type, nil
	case ast.KindGetAccessor:
		ga := node.AsGetAccessorDeclaration()
		return ga.Parameters, ga.Type, nil
	case ast.KindSetAccessor:
		sa := node.AsSetAccessorDeclaration()
		return sa.Parameters, sa.Type, nil
	default:
		return nil, nil, errors.Newf("not a function-like node: %v", node.Kind)
	}
}

// entityNameText flattens an identifier or qualified name into dotted text.
func entityNameText(node *ast.Node) string {
	if node == nil {
		return ""
	}
	switch node.Kind {
	case ast.KindIdentifier:
		return node.Text()
	case ast.KindQualifiedName:
		qn := node.AsQualifiedName()
		left := entityNameText(qn.Left)
		if left == "" {
			return ""
		}
		return left + "." + qn.Right.Text()
	default:
		return ""
	}
}

func functionTypeExpr(sig decl.CallSignature) decl.TypeExpr {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range sig.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
		sb.WriteString(": ")
		sb.WriteString(string(p.Type))
	}
	sb.WriteString(") -> ")
	sb.WriteString(string(sig.ReturnType))
	return decl.TypeExpr(sb.String())
}
