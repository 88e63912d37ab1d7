package usage

import (
	"path"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

const heroModel = `package com.example.core.models;

import javax.inject.Inject;
import org.apache.sling.api.resource.Resource;
import org.apache.sling.models.annotations.Model;
import org.apache.sling.models.annotations.injectorspecific.*;
import java.util.Map;

/**
 * Hero model. @Model in a comment must not count.
 */
@Model(adaptables = Resource.class, defaultInjectionStrategy = DefaultInjectionStrategy.OPTIONAL)
public class HeroModel {

    private static final String DEFAULT_TITLE = "Hero \"title\"";

    @ValueMapValue
    private String title;

    @Inject
    private Resource resource;

    @ValueMapValue(name = "jcr:description")
    private String description, subtitle;

    @Self
    private static HeroModel self;

    @SlingObject
    protected Resource parent;

    private Map<String, Integer> counts = new java.util.HashMap<String, Integer>();

    @ChildResource
    private Resource items = null, extra;

    public String getTitle() {
        String local = "x";
        return title;
    }

    public static class Item {
        @ValueMapValue
        private String label;
    }
}
`

const mailService = `package com.example.core.services;

import org.osgi.service.component.annotations.Component;
import org.osgi.service.component.annotations.Reference;
import javax.inject.Inject;

@Component(service = MailService.class, immediate = true)
public class MailService {

    @Reference
    private MessageGateway gateway;

    @Inject
    private Resolver resolver;

    @org.osgi.service.component.annotations.Reference
    private Other other;

    private final Runnable task = () -> {
        int a = 1, b = 2;
    };

    enum Mode { FAST, SLOW; private int weight; }
}
`

const trickyInitializers = `package com.example.core.models;

import javax.inject.Inject;
import java.util.*;
import org.apache.sling.models.annotations.Model;

@Model(adaptables = Resource.class)
public class Tricky {
    private static final int MAX = 4, LIMIT = 8;

    private boolean small = MAX < LIMIT;

    @Inject
    private Bar bar;

    private int shifted = LIMIT >> 1, masked = LIMIT >>> 2;

    private String pick = MAX > LIMIT ? "a<b" : 'c' < 'd' ? "x" : "y";

    private List<String> names = Collections.<String>emptyList(), more = new ArrayList<>();

    private Map<String, List<Integer>> nested = new HashMap<String, List<Integer>>();

    private boolean mixed = MAX < LIMIT && LIMIT > MAX, after;

    @Inject
    private Baz baz;

    private java.util.function.Predicate<Integer> test = i -> i < MAX;
}

class Other {
    @Inject
    private Qux qux;
}
`

func TestScanClasses(t *testing.T) {
	classes, err := Scan(strings.NewReader(heroModel))
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(classes) != 2 {
		t.Fatalf("got %d classes %+v, want 2", len(classes), classes)
	}

	hero := classes[0]
	if hero.Name != "HeroModel" {
		t.Errorf("Name = %q, want HeroModel", hero.Name)
	}
	assertAnnotations(t, hero.Annotations, []string{ModelAnnotation})

	gotFields := fieldNames(hero.Fields)
	wantFields := "DEFAULT_TITLE,title,resource,description,subtitle,self,parent,counts,items,extra"
	if gotFields != wantFields {
		t.Errorf("fields = %s, want %s", gotFields, wantFields)
	}

	if classes[1].Name != "HeroModel.Item" {
		t.Errorf("nested class name = %q, want HeroModel.Item", classes[1].Name)
	}
	if fieldNames(classes[1].Fields) != "label" {
		t.Errorf("nested fields = %s, want label", fieldNames(classes[1].Fields))
	}
}

func TestScanInitializerExpressions(t *testing.T) {
	classes, err := Scan(strings.NewReader(trickyInitializers))
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(classes) != 2 {
		t.Fatalf("got %d classes %+v, want 2", len(classes), classes)
	}

	gotFields := fieldNames(classes[0].Fields)
	wantFields := "MAX,LIMIT,small,bar,shifted,masked,pick,names,more,nested,mixed,after,baz,test"
	if gotFields != wantFields {
		t.Errorf("fields = %s\nwant     %s", gotFields, wantFields)
	}

	if classes[1].Name != "Other" {
		t.Errorf("second class = %q, want top-level Other", classes[1].Name)
	}
	if fieldNames(classes[1].Fields) != "qux" {
		t.Errorf("Other fields = %s, want qux", fieldNames(classes[1].Fields))
	}

	got := findingNames(Report("Tricky.java", classes))
	want := "class:Tricky,field:Tricky.bar,field:Tricky.baz"
	if got != want {
		t.Errorf("findings = %s\nwant       %s", got, want)
	}
}

func TestScanResolvesAnnotations(t *testing.T) {
	classes, err := Scan(strings.NewReader(heroModel))
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	fields := map[string]Field{}
	for _, f := range classes[0].Fields {
		fields[f.Name] = f
	}

	assertAnnotations(t, fields["title"].Annotations, []string{ValueMapValueAnnotation})
	assertAnnotations(t, fields["resource"].Annotations, []string{InjectAnnotation})
	assertAnnotations(t, fields["subtitle"].Annotations, []string{ValueMapValueAnnotation})
	assertAnnotations(t, fields["parent"].Annotations, []string{SlingObjectAnnotation})

	if !fields["self"].Static || !fields["self"].Private {
		t.Errorf("self modifiers = private:%v static:%v, want both", fields["self"].Private, fields["self"].Static)
	}
	if fields["parent"].Private {
		t.Error("parent should not be private")
	}
	if fields["title"].Line != 18 {
		t.Errorf("title line = %d, want 18", fields["title"].Line)
	}
}

func TestReportModel(t *testing.T) {
	classes, err := Scan(strings.NewReader(heroModel))
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	got := findingNames(Report("HeroModel.java", classes))
	want := "class:HeroModel,field:HeroModel.title,field:HeroModel.resource," +
		"field:HeroModel.description,field:HeroModel.subtitle," +
		"field:HeroModel.items,field:HeroModel.extra"
	if got != want {
		t.Errorf("findings = %s\nwant       %s", got, want)
	}
}

func TestReportComponent(t *testing.T) {
	classes, err := Scan(strings.NewReader(mailService))
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	got := findingNames(Report("MailService.java", classes))
	want := "class:MailService,field:MailService.gateway,field:MailService.other"
	if got != want {
		t.Errorf("findings = %s\nwant       %s", got, want)
	}
}

func TestIsImplicitWrite(t *testing.T) {
	model := Class{Annotations: []string{ModelAnnotation}}
	component := Class{Annotations: []string{ComponentAnnotation}}
	both := Class{Annotations: []string{ComponentAnnotation, ModelAnnotation}}
	plain := Class{}

	tests := []struct {
		name  string
		owner Class
		field Field
		want  bool
	}{
		{"model inject", model, Field{Private: true, Annotations: []string{InjectAnnotation}}, true},
		{"model reference", model, Field{Private: true, Annotations: []string{ReferenceAnnotation}}, true},
		{"model unannotated", model, Field{Private: true}, false},
		{"model static", model, Field{Private: true, Static: true, Annotations: []string{InjectAnnotation}}, false},
		{"model non-private", model, Field{Annotations: []string{InjectAnnotation}}, false},
		{"component reference", component, Field{Private: true, Annotations: []string{ReferenceAnnotation}}, true},
		{"component inject", component, Field{Private: true, Annotations: []string{InjectAnnotation}}, false},
		{"model rule wins", both, Field{Private: true, Annotations: []string{SelfAnnotation}}, true},
		{"plain class", plain, Field{Private: true, Annotations: []string{ReferenceAnnotation}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsImplicitWrite(tt.owner, tt.field); got != tt.want {
				t.Errorf("IsImplicitWrite() = %v, want %v", got, tt.want)
			}
			if IsImplicitRead(tt.field) {
				t.Error("IsImplicitRead() should always be false")
			}
		})
	}
}

func TestIsImplicitUsage(t *testing.T) {
	if !IsImplicitUsage(Class{Annotations: []string{ComponentAnnotation}}) {
		t.Error("component class should be implicitly used")
	}
	if !IsImplicitUsage(Class{Annotations: []string{ModelAnnotation}}) {
		t.Error("model class should be implicitly used")
	}
	if IsImplicitUsage(Class{Annotations: []string{"com.example.Model"}}) {
		t.Error("look-alike annotation from another package should not match")
	}
}

func TestScanUnresolvedAnnotationUsesPackage(t *testing.T) {
	src := "package com.example;\n@Model\nclass A {}\n"
	classes, err := Scan(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	assertAnnotations(t, classes[0].Annotations, []string{"com.example.Model"})
	if IsImplicitUsage(classes[0]) {
		t.Error("unimported @Model should not be treated as the Sling annotation")
	}
}

func TestScanFS(t *testing.T) {
	fsys := afero.NewMemMapFs()
	files := map[string]string{
		"/src/core/HeroModel.java":     heroModel,
		"/src/core/MailService.java":   mailService,
		"/src/core/README.md":          "@Model",
		"/src/.hidden/Ignored.java":    mailService,
		"/src/other/NotAnnotated.java": "package x;\npublic class NotAnnotated { private int a; }\n",
	}
	for name, content := range files {
		if err := fsys.MkdirAll(path.Dir(name), 0755); err != nil {
			t.Fatal(err)
		}
		if err := afero.WriteFile(fsys, name, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	findings, err := ScanFS(fsys, []string{"/src"})
	if err != nil {
		t.Fatalf("ScanFS() error: %v", err)
	}
	if len(findings) != 10 {
		t.Fatalf("got %d findings, want 10: %v", len(findings), findings)
	}
	if findings[0].File != "/src/core/HeroModel.java" || findings[0].Kind != KindClass {
		t.Errorf("first finding = %+v", findings[0])
	}
	for _, f := range findings {
		if strings.Contains(f.File, ".hidden") {
			t.Errorf("hidden directory was scanned: %v", f)
		}
	}
	if s := findings[0].String(); !strings.Contains(s, "class HeroModel is used implicitly") {
		t.Errorf("String() = %q", s)
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func fieldNames(fields []Field) string {
	var names []string
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return strings.Join(names, ",")
}

func findingNames(findings []Finding) string {
	var names []string
	for _, f := range findings {
		name := f.Kind + ":" + f.Class
		if f.Member != "" {
			name += "." + f.Member
		}
		names = append(names, name)
	}
	return strings.Join(names, ",")
}

func assertAnnotations(t *testing.T, got, want []string) {
	t.Helper()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("annotations = %v, want %v", got, want)
	}
}
