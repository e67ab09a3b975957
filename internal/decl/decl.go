// Package decl defines the output declaration model for tsdecl: a normalized
// representation of translated TypeScript ambient declarations, suitable for
// merging and emission to a statically typed target language.
package decl

// TypeExpr is a target-language type expression produced by the type mapper.
// The translator treats it as opaque text.
type TypeExpr string

// Well-known type expressions shared between the model and the default mapper.
const (
	Dynamic TypeExpr = "dynamic"
	String  TypeExpr = "String"
	Number  TypeExpr = "Number"
	Boolean TypeExpr = "Boolean"
	Unit    TypeExpr = "Unit"
)

// StubDelegateName is the synthesized delegate target used when a merged
// declaration must be usable as a value but has no real implementation.
const StubDelegateName = "stub"

// Member is a single translated declaration. Implementations are *Variable,
// *Function, *Classifier, *TypeAlias, and *EnumEntry; the union is sealed so
// consumers can switch exhaustively.
type Member interface {
	MemberName() string
	isMember()
}

// Variable is a translated variable or property declaration.
type Variable struct {
	Name string   `json:"name"`
	Type TypeExpr `json:"type"`
	// Receiver is the extension receiver type when this entry augments a
	// not-owned type. Empty for ordinary variables.
	Receiver    TypeExpr     `json:"receiver,omitempty"`
	ReadOnly    bool         `json:"readOnly,omitempty"`
	Override    bool         `json:"override,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

func (v *Variable) MemberName() string { return v.Name }
func (v *Variable) isMember()          {}

// Function is one call signature under a name. Several Function entries may
// share a name; they represent overloads and are never merged.
type Function struct {
	Name      string        `json:"name"`
	Signature CallSignature `json:"signature"`
	// Receiver is the extension receiver type when this entry augments a
	// not-owned type. Empty for ordinary functions.
	Receiver    TypeExpr     `json:"receiver,omitempty"`
	Override    bool         `json:"override,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

func (f *Function) MemberName() string { return f.Name }
func (f *Function) isMember()          {}

// CallSignature is a single parameter list, return type, and the generic
// parameters the signature is scoped to.
type CallSignature struct {
	TypeParameters []TypeParameter `json:"typeParameters,omitempty"`
	Parameters     []Parameter     `json:"parameters,omitempty"`
	ReturnType     TypeExpr        `json:"returnType"`
}

// Parameter is one parameter of a call signature.
type Parameter struct {
	Name     string   `json:"name"`
	Type     TypeExpr `json:"type"`
	Optional bool     `json:"optional,omitempty"`
	Variadic bool     `json:"variadic,omitempty"`
}

// TypeParameter is a generic parameter with an optional upper bound.
type TypeParameter struct {
	Name       string   `json:"name"`
	Constraint TypeExpr `json:"constraint,omitempty"`
}

// ClassifierKind identifies the flavor of a Classifier.
type ClassifierKind string

const (
	KindClass     ClassifierKind = "class"
	KindInterface ClassifierKind = "interface"
	KindObject    ClassifierKind = "object"
	KindEnum      ClassifierKind = "enum"
	// KindCompanionObject marks a synthesized static holder attached to a
	// class or interface during declaration merging.
	KindCompanionObject ClassifierKind = "companion"
)

// Classifier is a translated class, interface, namespace object, enum, or
// synthesized companion object. Members may nest further Classifiers, so
// namespaces-as-objects form a tree.
type Classifier struct {
	Kind              ClassifierKind  `json:"kind"`
	Name              string          `json:"name"`
	ConstructorParams []Parameter     `json:"constructorParams,omitempty"`
	TypeParameters    []TypeParameter `json:"typeParameters,omitempty"`
	Supertypes        []HeritageType  `json:"supertypes,omitempty"`
	Members           []Member        `json:"members,omitempty"`
	Annotations       []Annotation    `json:"annotations,omitempty"`
	Open              bool            `json:"open,omitempty"`
}

func (c *Classifier) MemberName() string { return c.Name }
func (c *Classifier) isMember()          {}

// Companion returns the classifier's synthesized static holder, or nil when
// none has been attached.
func (c *Classifier) Companion() *Classifier {
	for _, m := range c.Members {
		if cl, ok := m.(*Classifier); ok && cl.Kind == KindCompanionObject {
			return cl
		}
	}
	return nil
}

// HeritageType is a supertype reference. DelegateName is set only when the
// reference expresses delegation to a synthesized target.
type HeritageType struct {
	Type         TypeExpr `json:"type"`
	DelegateName string   `json:"delegateName,omitempty"`
}

// TypeAlias is a translated type alias. Targets holds the constituent type
// expressions; a source alias of a union type keeps one entry per constituent.
type TypeAlias struct {
	Name           string          `json:"name"`
	TypeParameters []TypeParameter `json:"typeParameters,omitempty"`
	Targets        []TypeExpr      `json:"targets"`
	Annotations    []Annotation    `json:"annotations,omitempty"`
}

func (t *TypeAlias) MemberName() string { return t.Name }
func (t *TypeAlias) isMember()          {}

// EnumEntry is a single enum member. Value holds the literal initializer text,
// or is empty when the source omits an initializer.
type EnumEntry struct {
	Name        string       `json:"name"`
	Value       string       `json:"value,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

func (e *EnumEntry) MemberName() string { return e.Name }
func (e *EnumEntry) isMember()          {}

// PackagePart is the result of translating one compilation unit: an optional
// package qualifier and the fully merged, alias-resolved declaration list.
type PackagePart struct {
	Qualifier    string   `json:"qualifier,omitempty"`
	Declarations []Member `json:"declarations"`
}

// AnnotationsOf returns the annotation list of any member variant.
func AnnotationsOf(m Member) []Annotation {
	switch v := m.(type) {
	case *Variable:
		return v.Annotations
	case *Function:
		return v.Annotations
	case *Classifier:
		return v.Annotations
	case *TypeAlias:
		return v.Annotations
	case *EnumEntry:
		return v.Annotations
	default:
		panic("decl: unknown member variant")
	}
}

// SetAnnotations replaces the annotation list of any member variant.
func SetAnnotations(m Member, anns []Annotation) {
	switch v := m.(type) {
	case *Variable:
		v.Annotations = anns
	case *Function:
		v.Annotations = anns
	case *Classifier:
		v.Annotations = anns
	case *TypeAlias:
		v.Annotations = anns
	case *EnumEntry:
		v.Annotations = anns
	default:
		panic("decl: unknown member variant")
	}
}

// KindName returns a human-readable kind for diagnostics.
func KindName(m Member) string {
	switch v := m.(type) {
	case *Variable:
		return "variable"
	case *Function:
		return "function"
	case *Classifier:
		return string(v.Kind)
	case *TypeAlias:
		return "type alias"
	case *EnumEntry:
		return "enum entry"
	default:
		panic("decl: unknown member variant")
	}
}
