package translator

import (
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"

	"github.com/tsdecl/tsdecl/internal/decl"
	"github.com/tsdecl/tsdecl/internal/diagnostic"
	"github.com/tsdecl/tsdecl/internal/typemap"
)

// visitInterfaceDeclaration produces an INTERFACE classifier for an own
// declaration, or extension-style free members when the interface augments a
// type this compilation unit does not own (e.g. a built-in).
func (s *scope) visitInterfaceDeclaration(stmt *ast.Node) error {
	iface := stmt.AsInterfaceDeclaration()
	name, err := declarationName(iface.Name())
	if err != nil {
		return err
	}

	mapper, typeParams := s.mapper.WithTypeParameters(iface.TypeParameters)

	if !s.isOwn(iface.Name()) {
		return s.appendExtensions(name, iface.Members, mapper)
	}

	members, _, statics, err := s.translateMemberList(iface.Members, mapper)
	if err != nil {
		return err
	}
	if len(statics) > 0 {
		members = append(members, &decl.Classifier{Kind: decl.KindCompanionObject, Members: statics})
	}

	s.append(&decl.Classifier{
		Kind:           decl.KindInterface,
		Name:           name,
		TypeParameters: typeParams,
		Supertypes:     s.heritageTypes(iface.HeritageClauses, mapper),
		Members:        members,
		Open:           true,
	})
	return nil
}

// appendExtensions translates an augmenting interface's members into
// receiver-scoped free declarations.
func (s *scope) appendExtensions(receiver string, memberList *ast.NodeList, mapper typemap.Mapper) error {
	members, _, _, err := s.translateMemberList(memberList, mapper)
	if err != nil {
		return err
	}
	for _, m := range members {
		switch v := m.(type) {
		case *decl.Variable:
			v.Receiver = decl.TypeExpr(receiver)
		case *decl.Function:
			v.Receiver = decl.TypeExpr(receiver)
		default:
			return unsupportedNode(nil, "member of augmented type %s has no extension form", receiver)
		}
		s.append(m)
	}
	return nil
}

// visitClassDeclaration produces a CLASS classifier. Static members land in a
// synthesized companion holder; an unnamed class is skipped with a
// diagnostic rather than failing the unit.
func (s *scope) visitClassDeclaration(stmt *ast.Node) error {
	cd := stmt.AsClassDeclaration()
	if cd.Name() == nil {
		s.diags.Warn(diagnostic.CategorySkippedDeclaration, "", 0,
			"skipping unnamed class declaration")
		return nil
	}
	name, err := declarationName(cd.Name())
	if err != nil {
		return err
	}

	mapper, typeParams := s.mapper.WithTypeParameters(cd.TypeParameters)
	members, ctorParams, statics, err := s.translateMemberList(cd.Members, mapper)
	if err != nil {
		return err
	}
	if len(statics) > 0 {
		members = append(members, &decl.Classifier{Kind: decl.KindCompanionObject, Members: statics})
	}

	s.append(&decl.Classifier{
		Kind:              decl.KindClass,
		Name:              name,
		ConstructorParams: ctorParams,
		TypeParameters:    typeParams,
		Supertypes:        s.heritageTypes(cd.HeritageClauses, mapper),
		Members:           members,
		Open:              true,
	})
	return nil
}

// translateMemberList translates classifier members. It returns the instance
// members, constructor parameters (classes only), and static members.
func (s *scope) translateMemberList(list *ast.NodeList, mapper typemap.Mapper) (members []decl.Member, ctorParams []decl.Parameter, statics []decl.Member, err error) {
	if list == nil {
		return nil, nil, nil, nil
	}

	// Accessor pairs collapse to one variable, so setters with a matching
	// getter must be recognized up front.
	getters := make(map[string]bool)
	setters := make(map[string]bool)
	for _, m := range list.Nodes {
		switch m.Kind {
		case ast.KindGetAccessor:
			if n, nerr := declarationName(m.Name()); nerr == nil {
				getters[n] = true
			}
		case ast.KindSetAccessor:
			if n, nerr := declarationName(m.Name()); nerr == nil {
				setters[n] = true
			}
		}
	}

	appendTo := func(m *ast.Node, translated ...decl.Member) {
		if hasModifier(m, ast.KindStaticKeyword) {
			statics = append(statics, translated...)
		} else {
			members = append(members, translated...)
		}
	}

	for _, m := range list.Nodes {
		switch m.Kind {
		case ast.KindPropertySignature, ast.KindPropertyDeclaration:
			v, perr := s.translateProperty(m, mapper)
			if perr != nil {
				return nil, nil, nil, perr
			}
			appendTo(m, v)

		case ast.KindMethodSignature, ast.KindMethodDeclaration:
			fns, ferr := s.translateMethod(m, mapper)
			if ferr != nil {
				return nil, nil, nil, ferr
			}
			appendTo(m, fns...)

		case ast.KindConstructor:
			params, cerr := constructorParameters(m, mapper)
			if cerr != nil {
				return nil, nil, nil, cerr
			}
			ctorParams = params

		case ast.KindCallSignature:
			sigs, cerr := mapper.MapCallSignature(m)
			if cerr != nil {
				return nil, nil, nil, cerr
			}
			for _, sig := range sigs {
				members = append(members, &decl.Function{
					Name:        "invoke",
					Signature:   sig,
					Annotations: []decl.Annotation{{Name: decl.AnnotationNativeInvoke}},
				})
			}

		case ast.KindIndexSignature:
			fns, ierr := indexSignatureAccessors(m, mapper)
			if ierr != nil {
				return nil, nil, nil, ierr
			}
			members = append(members, fns...)

		case ast.KindGetAccessor:
			name, nerr := declarationName(m.Name())
			if nerr != nil {
				return nil, nil, nil, nerr
			}
			ga := m.AsGetAccessorDeclaration()
			appendTo(m, &decl.Variable{
				Name:     name,
				Type:     mapper.MapType(ga.Type),
				ReadOnly: !setters[name],
				Override: s.isOverrideProperty(m),
			})

		case ast.KindSetAccessor:
			name, nerr := declarationName(m.Name())
			if nerr != nil {
				return nil, nil, nil, nerr
			}
			if getters[name] {
				continue // already produced from the getter
			}
			sa := m.AsSetAccessorDeclaration()
			var t decl.TypeExpr = decl.Dynamic
			if sa.Parameters != nil && len(sa.Parameters.Nodes) > 0 {
				t = mapper.MapType(sa.Parameters.Nodes[0].AsParameterDeclaration().Type)
			}
			appendTo(m, &decl.Variable{Name: name, Type: t, Override: s.isOverrideProperty(m)})

		default:
			return nil, nil, nil, unsupportedNode(m, "classifier member has no translation")
		}
	}
	return members, ctorParams, statics, nil
}

func (s *scope) translateProperty(m *ast.Node, mapper typemap.Mapper) (*decl.Variable, error) {
	name, err := declarationName(m.Name())
	if err != nil {
		return nil, err
	}

	var typeNode *ast.Node
	optional := false
	switch m.Kind {
	case ast.KindPropertySignature:
		ps := m.AsPropertySignatureDeclaration()
		typeNode = ps.Type
		optional = ps.PostfixToken != nil && ps.PostfixToken.Kind == ast.KindQuestionToken
	case ast.KindPropertyDeclaration:
		pd := m.AsPropertyDeclaration()
		typeNode = pd.Type
		optional = pd.PostfixToken != nil && pd.PostfixToken.Kind == ast.KindQuestionToken
	}

	t := mapper.MapType(typeNode)
	if optional {
		t = mapper.Nullable(t)
	}
	return &decl.Variable{
		Name:     name,
		Type:     t,
		ReadOnly: hasModifier(m, ast.KindReadonlyKeyword),
		Override: s.isOverrideProperty(m),
	}, nil
}

func (s *scope) translateMethod(m *ast.Node, mapper typemap.Mapper) ([]decl.Member, error) {
	name, err := declarationName(m.Name())
	if err != nil {
		return nil, err
	}

	var typeParamList *ast.NodeList
	switch m.Kind {
	case ast.KindMethodSignature:
		typeParamList = m.AsMethodSignatureDeclaration().TypeParameters
	case ast.KindMethodDeclaration:
		typeParamList = m.AsMethodDeclaration().TypeParameters
	}

	scoped, typeParams := mapper.WithTypeParameters(typeParamList)
	sigs, err := scoped.MapCallSignature(m)
	if err != nil {
		return nil, err
	}

	override := s.isOverride(m)
	var out []decl.Member
	for _, sig := range sigs {
		sig.TypeParameters = typeParams
		out = append(out, &decl.Function{Name: name, Signature: sig, Override: override})
	}
	return out, nil
}

func constructorParameters(m *ast.Node, mapper typemap.Mapper) ([]decl.Parameter, error) {
	sigs, err := mapper.MapCallSignature(m)
	if err != nil {
		return nil, err
	}
	if len(sigs) == 0 {
		return nil, nil
	}
	return sigs[0].Parameters, nil
}

// indexSignatureAccessors translates `[key: K]: V` into native get/set
// accessor functions.
func indexSignatureAccessors(m *ast.Node, mapper typemap.Mapper) ([]decl.Member, error) {
	isd := m.AsIndexSignatureDeclaration()
	if isd.Parameters == nil || len(isd.Parameters.Nodes) != 1 {
		return nil, unsupportedNode(m, "index signature must have exactly one parameter")
	}
	kp := isd.Parameters.Nodes[0].AsParameterDeclaration()
	keyName, err := declarationName(kp.Name())
	if err != nil {
		return nil, err
	}
	key := decl.Parameter{Name: keyName, Type: mapper.MapType(kp.Type)}
	value := mapper.MapType(isd.Type)

	get := &decl.Function{
		Name:        "get",
		Signature:   decl.CallSignature{Parameters: []decl.Parameter{key}, ReturnType: mapper.Nullable(value)},
		Annotations: []decl.Annotation{{Name: decl.AnnotationNativeGetter}},
	}
	set := &decl.Function{
		Name: "set",
		Signature: decl.CallSignature{
			Parameters: []decl.Parameter{key, {Name: "value", Type: value}},
			ReturnType: decl.Unit,
		},
		Annotations: []decl.Annotation{{Name: decl.AnnotationNativeSetter}},
	}
	return []decl.Member{get, set}, nil
}

// heritageTypes maps extends/implements clauses to supertype references.
func (s *scope) heritageTypes(clauses *ast.NodeList, mapper typemap.Mapper) []decl.HeritageType {
	if clauses == nil {
		return nil
	}
	var out []decl.HeritageType
	for _, c := range clauses.Nodes {
		hc := c.AsHeritageClause()
		if hc.Types == nil {
			continue
		}
		for _, t := range hc.Types.Nodes {
			ewta := t.AsExpressionWithTypeArguments()
			name := expressionNameText(ewta.Expression)
			if name == "" {
				continue
			}
			expr := name
			if ewta.TypeArguments != nil && len(ewta.TypeArguments.Nodes) > 0 {
				args := make([]string, 0, len(ewta.TypeArguments.Nodes))
				for _, arg := range ewta.TypeArguments.Nodes {
					args = append(args, string(mapper.MapType(arg)))
				}
				expr = name + "<" + strings.Join(args, ", ") + ">"
			}
			out = append(out, decl.HeritageType{Type: decl.TypeExpr(expr)})
		}
	}
	return out
}

// expressionNameText flattens an identifier or dotted property access into
// its source text.
func expressionNameText(node *ast.Node) string {
	switch node.Kind {
	case ast.KindIdentifier:
		return node.Text()
	case ast.KindPropertyAccessExpression:
		pa := node.AsPropertyAccessExpression()
		left := expressionNameText(pa.Expression)
		if left == "" {
			return ""
		}
		return left + "." + pa.Name().Text()
	default:
		return ""
	}
}
