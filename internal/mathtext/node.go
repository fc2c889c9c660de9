package mathtext

// Kind identifies the shape of a Node.
type Kind int

const (
	KindRow    Kind = iota // Children laid out left to right
	KindSymbol             // Text drawn in Font
	KindSpace              // Width em of horizontal space
	KindScript             // Base with optional Sup and Sub
	KindFrac               // Num over Den
	KindSqrt               // radical over Body, optional Index
	KindAccent             // Text centered above Body; empty Text draws a bar
	KindFenced             // Body between stretchy Left and Right delimiters
	KindMatrix             // Cells in a grid
)

// Font selects the face a symbol is drawn with.
type Font int

const (
	FontItalic Font = iota
	FontRoman
	FontBold
	FontBoldItalic
)

// Class drives inter-atom spacing.
type Class int

const (
	ClassOrd Class = iota
	ClassOp
	ClassBin
	ClassRel
	ClassOpen
	ClassClose
	ClassPunct
)

// Node is one element of a parsed expression. Only the fields relevant to
// Kind are set.
type Node struct {
	Kind  Kind
	Text  string
	Font  Font
	Class Class

	// Large marks big operators such as \sum and \int.
	Large bool

	// Width is the KindSpace width in em; it may be negative.
	Width float64

	Children []*Node

	Base *Node
	Sup  *Node
	Sub  *Node

	Num    *Node
	Den    *Node
	NoRule bool

	Body  *Node
	Index *Node

	Left  string
	Right string

	Cells     [][]*Node
	AlignLeft bool
}

// IsEmpty reports whether n draws nothing.
func (n *Node) IsEmpty() bool {
	if n == nil {
		return true
	}
	switch n.Kind {
	case KindRow:
		for _, c := range n.Children {
			if !c.IsEmpty() {
				return false
			}
		}
		return true
	case KindSymbol:
		return n.Text == ""
	case KindSpace:
		return n.Width == 0
	}
	return false
}

func row(children ...*Node) *Node {
	return &Node{Kind: KindRow, Children: children}
}

func symbol(text string, font Font, class Class) *Node {
	return &Node{Kind: KindSymbol, Text: text, Font: font, Class: class}
}

func space(em float64) *Node {
	return &Node{Kind: KindSpace, Width: em}
}
