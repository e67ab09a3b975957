package translator

import (
	"github.com/microsoft/typescript-go/shim/ast"

	"github.com/tsdecl/tsdecl/internal/decl"
)

// visitVariableStatement produces one Variable per bound name. A statement
// lacking the scope's required modifier yields placeholder-annotated entries,
// so a later genuine declaration can supersede them during merging.
func (s *scope) visitVariableStatement(stmt *ast.Node) error {
	vs := stmt.AsVariableStatement()
	isConst := vs.DeclarationList.Flags&ast.NodeFlagsConst != 0
	list := vs.DeclarationList.AsVariableDeclarationList()

	var anns []decl.Annotation
	if s.cfg.RequiredModifier != ast.KindUnknown && !hasModifier(stmt, s.cfg.RequiredModifier) {
		anns = []decl.Annotation{{Name: decl.AnnotationPlaceholder}}
	}

	for _, d := range list.Declarations.Nodes {
		vd := d.AsVariableDeclaration()
		name, err := declarationName(vd.Name())
		if err != nil {
			return err
		}
		v := &decl.Variable{
			Name:        name,
			Type:        s.mapper.MapType(vd.Type),
			ReadOnly:    isConst,
			Annotations: anns,
		}
		s.append(v)
	}
	return nil
}

// visitFunctionDeclaration expands the declaration into one Function per
// signature the mapper yields. An implementation signature is discarded when
// bodiless overloads with the same name exist in this scope.
func (s *scope) visitFunctionDeclaration(stmt *ast.Node) error {
	fn := stmt.AsFunctionDeclaration()
	name, err := declarationName(fn.Name())
	if err != nil {
		return err
	}
	if fn.Body != nil && s.overloadArity[name] > 0 {
		return nil
	}

	mapper, typeParams := s.mapper.WithTypeParameters(fn.TypeParameters)
	sigs, err := mapper.MapCallSignature(stmt)
	if err != nil {
		return err
	}
	for _, sig := range sigs {
		sig.TypeParameters = typeParams
		f := &decl.Function{Name: name, Signature: sig}
		s.append(f)
	}
	return nil
}

// visitEnumDeclaration produces one ENUM classifier with EnumEntry members.
// Only literal initializers are representable.
func (s *scope) visitEnumDeclaration(stmt *ast.Node) error {
	ed := stmt.AsEnumDeclaration()
	name, err := declarationName(ed.Name())
	if err != nil {
		return err
	}

	enum := &decl.Classifier{Kind: decl.KindEnum, Name: name}
	for _, m := range ed.Members.Nodes {
		em := m.AsEnumMember()
		entryName, err := declarationName(em.Name())
		if err != nil {
			return err
		}
		value, err := enumInitializerText(em.Initializer)
		if err != nil {
			return err
		}
		enum.Members = append(enum.Members, &decl.EnumEntry{Name: entryName, Value: value})
	}
	s.append(enum)
	return nil
}

// enumInitializerText captures a literal enum initializer as text. Computed
// initializers are unsupported.
func enumInitializerText(init *ast.Node) (string, error) {
	if init == nil {
		return "", nil
	}
	switch init.Kind {
	case ast.KindStringLiteral, ast.KindNumericLiteral:
		return init.Text(), nil
	case ast.KindPrefixUnaryExpression:
		un := init.AsPrefixUnaryExpression()
		if un.Operator == ast.KindMinusToken && un.Operand.Kind == ast.KindNumericLiteral {
			return "-" + un.Operand.Text(), nil
		}
	}
	return "", unsupportedNode(init, "computed enum initializer")
}

// visitTypeAliasDeclaration appends a TypeAlias. A union-typed alias keeps one
// target per constituent rather than collapsing.
func (s *scope) visitTypeAliasDeclaration(stmt *ast.Node) error {
	ta := stmt.AsTypeAliasDeclaration()
	name, err := declarationName(ta.Name())
	if err != nil {
		return err
	}

	mapper, typeParams := s.mapper.WithTypeParameters(ta.TypeParameters)
	var targets []decl.TypeExpr
	if ta.Type != nil && ta.Type.Kind == ast.KindUnionType {
		for _, member := range ta.Type.AsUnionTypeNode().Types.Nodes {
			targets = append(targets, mapper.MapType(member))
		}
	} else {
		targets = []decl.TypeExpr{mapper.MapType(ta.Type)}
	}

	s.append(&decl.TypeAlias{Name: name, TypeParameters: typeParams, Targets: targets})
	return nil
}

// visitExportAssignment registers an `export = X` alias. The module
// annotation is attached to the declaration named X during the finishing
// pass, not here, since the declaration may not have been visited yet.
func (s *scope) visitExportAssignment(stmt *ast.Node) error {
	ea := stmt.AsExportAssignment()
	if !ea.IsExportEquals {
		return unsupportedNode(stmt, "export default has no ambient translation")
	}
	if ea.Expression == nil || ea.Expression.Kind != ast.KindIdentifier {
		return unsupportedNode(ea.Expression, "export assignment target must be an identifier")
	}
	s.aliases[ea.Expression.Text()] = decl.ModuleAnnotation(s.cfg.ModuleName)
	return nil
}
