package xmlutils

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

// ErrNoRootElement is returned for input that holds no XML element.
var ErrNoRootElement = errors.New("document has no root element")

// ErrJunkAfterRoot is returned when content other than whitespace, comments or
// processing instructions sits beside the root element.
var ErrJunkAfterRoot = errors.New("junk after document element")

// LoadDocument reads an XML document from r. Encodings declared in the XML
// prolog, such as windows-1250, are converted to UTF-8.
func LoadDocument(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	if doc.Root() == nil {
		return nil, ErrNoRootElement
	}
	if err := checkTopLevel(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// checkTopLevel enforces a single root element and no text outside it.
func checkTopLevel(doc *etree.Document) error {
	elements := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			elements++
			if elements > 1 {
				return fmt.Errorf("%w: second element <%s>", ErrJunkAfterRoot, t.FullTag())
			}
		case *etree.CharData:
			if strings.Trim(t.Data, " \t\r\n\ufeff") != "" {
				return ErrJunkAfterRoot
			}
		}
	}
	return nil
}

// NamespacedPath is a compiled path whose steps are bound to namespace URIs.
type NamespacedPath struct {
	expr string
	path etree.Path
}

// String returns the prefixed expression the path was compiled from.
func (p NamespacedPath) String() string {
	return p.expr
}

// CompileNamespacedPath compiles a prefixed expression such as
// ".//cac:Contract/cbc:ID" into an etree path. Each prefixed step is bound to
// the URI found in namespaces, so documents may use any prefix for it.
func CompileNamespacedPath(expr string, namespaces map[string]string) (NamespacedPath, error) {
	steps := strings.Split(expr, "/")
	for i, step := range steps {
		prefix, local, ok := strings.Cut(step, ":")
		if !ok {
			continue
		}
		uri, known := namespaces[prefix]
		if !known {
			return NamespacedPath{}, fmt.Errorf("unknown namespace prefix %q in %q", prefix, expr)
		}
		steps[i] = fmt.Sprintf("%s[namespace-uri()='%s']", local, uri)
	}

	path, err := etree.CompilePath(strings.Join(steps, "/"))
	if err != nil {
		return NamespacedPath{}, fmt.Errorf("failed to compile path %q: %w", expr, err)
	}
	return NamespacedPath{expr: expr, path: path}, nil
}

// MustCompileNamespacedPath is like CompileNamespacedPath but panics on error.
func MustCompileNamespacedPath(expr string, namespaces map[string]string) NamespacedPath {
	p, err := CompileNamespacedPath(expr, namespaces)
	if err != nil {
		panic(err)
	}
	return p
}

// FindFirst returns the first element matched by path in document order, or
// nil when nothing matches.
func FindFirst(root *etree.Element, path NamespacedPath) *etree.Element {
	matches := root.FindElementsPath(path.path)
	switch len(matches) {
	case 0:
		return nil
	case 1:
		return matches[0]
	}

	order := documentOrder(root)
	first := matches[0]
	for _, m := range matches[1:] {
		if order[m] < order[first] {
			first = m
		}
	}
	return first
}

// FindText returns the text of the first element matched by path. The boolean
// is false when no element matches.
func FindText(root *etree.Element, path NamespacedPath) (string, bool) {
	e := FindFirst(root, path)
	if e == nil {
		return "", false
	}
	return e.Text(), true
}

func documentOrder(root *etree.Element) map[*etree.Element]int {
	order := make(map[*etree.Element]int)
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		order[e] = len(order)
		for _, c := range e.ChildElements() {
			walk(c)
		}
	}
	walk(root)
	return order
}
