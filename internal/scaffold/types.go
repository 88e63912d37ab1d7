package scaffold

// Language tags a generated file with the kind of content it holds.
type Language string

const (
	HTML      Language = "html"
	XML       Language = "xml"
	PlainText Language = "text"
)

// Fixed names of generated files and directories.
const (
	ContentXMLFile   = ".content.xml"
	DialogDir        = "dialog"
	CqDialogDir      = "_cq_dialog"
	CqEditConfigDir  = "_cq_editConfig"
	CqTemplateDir    = "_cq_template"
	ClientLibraryDir = "clientLibrary"
	CSSDir           = "css"
	CSSFile          = "style.css"
	LessFile         = "style.less"
	CSSIndexFile     = "css.txt"
	JSDir            = "js"
	JSFile           = "script.js"
	JSIndexFile      = "js.txt"
)

// Placeholder tokens replaced verbatim in rendered templates.
const (
	TokenComponentTitle      = "ComponentTitle"
	TokenComponentGroupName  = "ComponentGroupName"
	TokenClientLibCategories = "ClientLibsCategories"
)

// Template IDs understood by a Renderer.
const (
	TemplateComponentContent = "component-content"
	TemplateCqDialog         = "cq-dialog"
	TemplateClientLibContent = "clientlib-content"
)

// Backend is the set of directory and file operations the scaffolders need.
// Paths are slash-separated and relative to the backend root. Every method
// either succeeds or returns an error that aborts the scaffold.
type Backend interface {
	CreateSubdirectory(parent, name string) (string, error)
	FindSubdirectory(parent, name string) (string, bool, error)
	FindFile(dir, name string) (string, bool, error)
	CreateFile(dir, name string, lang Language, content string) (string, error)
	DeleteFile(file string) error
}

// Renderer returns the raw text of a named template. A missing template
// yields an empty string; the renderer reports the problem itself.
type Renderer interface {
	Render(id string) string
}

// ComponentRequest describes one component to scaffold under Parent.
type ComponentRequest struct {
	Parent       string
	Title        string // directory name and jcr:title
	Group        string // componentGroup
	Dialog       bool   // classic UI dialog/
	CqDialog     bool   // touch UI _cq_dialog/
	CqEditConfig bool
	CqTemplate   bool
}

// ClientLibraryRequest describes one client library to scaffold under Parent.
type ClientLibraryRequest struct {
	Parent     string
	Categories string // inserted verbatim into the categories property
	CSS        bool
	Less       bool
	JS         bool
}
