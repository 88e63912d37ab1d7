package usage

// Fully qualified annotation names the rules understand.
const (
	ChildResourceAnnotation    = "org.apache.sling.models.annotations.injectorspecific.ChildResource"
	ComponentAnnotation        = "org.osgi.service.component.annotations.Component"
	InjectAnnotation           = "javax.inject.Inject"
	ModelAnnotation            = "org.apache.sling.models.annotations.Model"
	OSGiServiceAnnotation      = "org.apache.sling.models.annotations.injectorspecific.OSGiService"
	ReferenceAnnotation        = "org.osgi.service.component.annotations.Reference"
	RequestAttributeAnnotation = "org.apache.sling.models.annotations.injectorspecific.RequestAttribute"
	ResourcePathAnnotation     = "org.apache.sling.models.annotations.injectorspecific.ResourcePath"
	SelfAnnotation             = "org.apache.sling.models.annotations.injectorspecific.Self"
	SlingObjectAnnotation      = "org.apache.sling.models.annotations.injectorspecific.SlingObject"
	ValueMapValueAnnotation    = "org.apache.sling.models.annotations.injectorspecific.ValueMapValue"
)

// ClassAnnotations mark a class as instantiated by the framework.
var ClassAnnotations = []string{
	ComponentAnnotation,
	ModelAnnotation,
}

// Rule says that private instance fields of a class annotated with Owner
// are written by the framework when they carry one of FieldAnnotations.
type Rule struct {
	Owner            string
	FieldAnnotations []string
}

// Rules is checked in order; the first rule whose Owner matches decides.
var Rules = []Rule{
	{
		Owner: ModelAnnotation,
		FieldAnnotations: []string{
			ChildResourceAnnotation,
			InjectAnnotation,
			OSGiServiceAnnotation,
			ReferenceAnnotation,
			RequestAttributeAnnotation,
			ResourcePathAnnotation,
			SelfAnnotation,
			SlingObjectAnnotation,
			ValueMapValueAnnotation,
		},
	},
	{
		Owner:            ComponentAnnotation,
		FieldAnnotations: []string{ReferenceAnnotation},
	},
}

// Field is a field declaration with resolved annotation names.
type Field struct {
	Name        string
	Annotations []string
	Private     bool
	Static      bool
	Line        int
}

// Class is a type declaration with resolved annotation names.
type Class struct {
	Name        string // simple name, nested types as Outer.Inner
	Annotations []string
	Fields      []Field
	Line        int
}

func hasAny(annotations, wanted []string) bool {
	for _, a := range annotations {
		for _, w := range wanted {
			if a == w {
				return true
			}
		}
	}
	return false
}

// IsImplicitUsage reports whether the framework instantiates c.
func IsImplicitUsage(c Class) bool {
	return hasAny(c.Annotations, ClassAnnotations)
}

// IsImplicitRead is always false: no annotation implies a hidden read.
func IsImplicitRead(Field) bool {
	return false
}

// IsImplicitWrite reports whether the framework injects a value into f,
// declared in owner.
func IsImplicitWrite(owner Class, f Field) bool {
	if !f.Private || f.Static {
		return false
	}
	for _, rule := range Rules {
		if hasAny(owner.Annotations, []string{rule.Owner}) {
			return hasAny(f.Annotations, rule.FieldAnnotations)
		}
	}
	return false
}
