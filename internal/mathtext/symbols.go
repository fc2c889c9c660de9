package mathtext

type symbolDef struct {
	text  string
	class Class
	font  Font
	large bool
}

func ord(text string) symbolDef { return symbolDef{text: text, class: ClassOrd, font: FontRoman} }
func greek(text string) symbolDef { return symbolDef{text: text, class: ClassOrd, font: FontItalic} }
func bin(text string) symbolDef { return symbolDef{text: text, class: ClassBin, font: FontRoman} }
func rel(text string) symbolDef { return symbolDef{text: text, class: ClassRel, font: FontRoman} }
func bigOp(text string) symbolDef { return symbolDef{text: text, class: ClassOp, font: FontRoman, large: true} }
func opening(text string) symbolDef { return symbolDef{text: text, class: ClassOpen, font: FontRoman} }
func closing(text string) symbolDef { return symbolDef{text: text, class: ClassClose, font: FontRoman} }

// symbols maps command names to the Unicode text they render as.
var symbols = map[string]symbolDef{
	// Lowercase Greek is italic, uppercase upright.
	"alpha": greek("α"), "beta": greek("β"), "gamma": greek("γ"), "delta": greek("δ"),
	"epsilon": greek("ε"), "varepsilon": greek("ε"), "zeta": greek("ζ"), "eta": greek("η"),
	"theta": greek("θ"), "vartheta": greek("ϑ"), "iota": greek("ι"), "kappa": greek("κ"),
	"lambda": greek("λ"), "mu": greek("μ"), "nu": greek("ν"), "xi": greek("ξ"),
	"omicron": greek("ο"), "pi": greek("π"), "varpi": greek("ϖ"), "rho": greek("ρ"),
	"varrho": greek("ϱ"), "sigma": greek("σ"), "varsigma": greek("ς"), "tau": greek("τ"),
	"upsilon": greek("υ"), "phi": greek("φ"), "varphi": greek("φ"), "chi": greek("χ"),
	"psi": greek("ψ"), "omega": greek("ω"),
	"Gamma": ord("Γ"), "Delta": ord("Δ"), "Theta": ord("Θ"), "Lambda": ord("Λ"),
	"Xi": ord("Ξ"), "Pi": ord("Π"), "Sigma": ord("Σ"), "Upsilon": ord("Υ"),
	"Phi": ord("Φ"), "Psi": ord("Ψ"), "Omega": ord("Ω"),

	"sum": bigOp("∑"), "prod": bigOp("∏"), "coprod": bigOp("∐"),
	"int": bigOp("∫"), "iint": bigOp("∬"), "iiint": bigOp("∭"), "oint": bigOp("∮"),
	"bigcup": bigOp("⋃"), "bigcap": bigOp("⋂"), "bigvee": bigOp("⋁"), "bigwedge": bigOp("⋀"),
	"bigoplus": bigOp("⊕"), "bigotimes": bigOp("⊗"),

	"pm": bin("±"), "mp": bin("∓"), "times": bin("×"), "div": bin("÷"),
	"cdot": bin("·"), "ast": bin("∗"), "star": bin("⋆"), "circ": bin("∘"),
	"bullet": bin("•"), "oplus": bin("⊕"), "ominus": bin("⊖"), "otimes": bin("⊗"),
	"oslash": bin("⊘"), "odot": bin("⊙"), "cup": bin("∪"), "cap": bin("∩"),
	"vee": bin("∨"), "wedge": bin("∧"), "lor": bin("∨"), "land": bin("∧"),
	"setminus": bin("∖"), "wr": bin("≀"),

	"leq": rel("≤"), "le": rel("≤"), "geq": rel("≥"), "ge": rel("≥"),
	"neq": rel("≠"), "ne": rel("≠"), "equiv": rel("≡"), "approx": rel("≈"),
	"sim": rel("∼"), "simeq": rel("≃"), "cong": rel("≅"), "propto": rel("∝"),
	"ll": rel("≪"), "gg": rel("≫"), "prec": rel("≺"), "succ": rel("≻"),
	"subset": rel("⊂"), "supset": rel("⊃"), "subseteq": rel("⊆"), "supseteq": rel("⊇"),
	"in": rel("∈"), "notin": rel("∉"), "ni": rel("∋"), "perp": rel("⊥"),
	"parallel": rel("∥"), "mid": rel("∣"), "vdash": rel("⊢"), "models": rel("⊨"),
	"doteq": rel("≐"), "asymp": rel("≍"), "coloneqq": rel("≔"),
	"to": rel("→"), "rightarrow": rel("→"), "longrightarrow": rel("→"),
	"leftarrow": rel("←"), "gets": rel("←"), "longleftarrow": rel("←"),
	"leftrightarrow": rel("↔"), "Rightarrow": rel("⇒"), "Leftarrow": rel("⇐"),
	"Leftrightarrow": rel("⇔"), "implies": rel("⇒"), "impliedby": rel("⇐"),
	"iff": rel("⇔"), "mapsto": rel("↦"), "uparrow": rel("↑"), "downarrow": rel("↓"),

	"infty": ord("∞"), "partial": ord("∂"), "nabla": ord("∇"), "forall": ord("∀"),
	"exists": ord("∃"), "nexists": ord("∄"), "emptyset": ord("∅"), "varnothing": ord("∅"),
	"hbar": greek("ℏ"), "ell": greek("ℓ"), "Re": ord("ℜ"), "Im": ord("ℑ"),
	"aleph": ord("ℵ"), "wp": ord("℘"), "prime": ord("′"), "angle": ord("∠"),
	"triangle": ord("△"), "neg": ord("¬"), "lnot": ord("¬"), "top": ord("⊤"),
	"bot": ord("⊥"), "ldots": ord("…"), "dots": ord("…"), "cdots": ord("⋯"),
	"vdots": ord("⋮"), "ddots": ord("⋱"), "degree": ord("°"), "surd": ord("√"),
	"dagger": ord("†"), "ddagger": ord("‡"), "imath": greek("ı"), "jmath": greek("ȷ"),
	"backslash": ord("\\"), "vert": ord("|"), "Vert": ord("‖"),
	"colon": {text: ":", class: ClassPunct, font: FontRoman},

	"langle": opening("⟨"), "rangle": closing("⟩"),
	"lfloor": opening("⌊"), "rfloor": closing("⌋"),
	"lceil": opening("⌈"), "rceil": closing("⌉"),
	"lbrace": opening("{"), "rbrace": closing("}"),
}

// functions render upright by name.
var functions = map[string]bool{
	"sin": true, "cos": true, "tan": true, "cot": true, "sec": true, "csc": true,
	"arcsin": true, "arccos": true, "arctan": true, "sinh": true, "cosh": true,
	"tanh": true, "coth": true, "log": true, "ln": true, "lg": true, "exp": true,
	"lim": true, "limsup": true, "liminf": true, "max": true, "min": true,
	"sup": true, "inf": true, "det": true, "dim": true, "ker": true, "deg": true,
	"gcd": true, "lcm": true, "arg": true, "hom": true, "Pr": true,
}

// delimiters are the names accepted after \left, \right and \big.
var delimiters = map[string]string{
	"langle": "⟨", "rangle": "⟩", "lbrace": "{", "rbrace": "}",
	"vert": "|", "lvert": "|", "rvert": "|", "Vert": "‖", "lVert": "‖", "rVert": "‖",
	"lfloor": "⌊", "rfloor": "⌋", "lceil": "⌈", "rceil": "⌉",
	"backslash": "\\", "uparrow": "↑", "downarrow": "↓",
}

var accents = map[string]string{
	"hat": "ˆ", "widehat": "ˆ", "check": "ˇ", "tilde": "˜", "widetilde": "˜",
	"bar": "¯", "vec": "→", "dot": "˙", "ddot": "¨", "acute": "´",
	"grave": "`", "breve": "˘", "mathring": "˚",
	"overline": "",
}

var blackboard = map[rune]string{
	'C': "ℂ", 'H': "ℍ", 'N': "ℕ", 'P': "ℙ", 'Q': "ℚ", 'R': "ℝ", 'Z': "ℤ",
}

var negations = map[string]string{
	"=": "≠", "∈": "∉", "<": "≮", ">": "≯", "≡": "≢", "⊂": "⊄",
	"⊃": "⊅", "∼": "≁", "≤": "≰", "≥": "≱", "∃": "∄",
}

// environments maps matrix-like environments to their fences.
var environments = map[string]struct {
	left, right string
	alignLeft   bool
}{
	"matrix":      {},
	"smallmatrix": {},
	"pmatrix":     {left: "(", right: ")"},
	"bmatrix":     {left: "[", right: "]"},
	"Bmatrix":     {left: "{", right: "}"},
	"vmatrix":     {left: "|", right: "|"},
	"Vmatrix":     {left: "‖", right: "‖"},
	"cases":       {left: "{", alignLeft: true},
	"aligned":     {},
	"align*":      {},
	"alignat":     {},
	"gathered":    {},
	"gather":      {},
	"split":       {},
	"array":       {},
	"equation*":   {},
}

// Spacing commands, in em.
var spacing = map[string]float64{
	"quad":         1,
	"qquad":        2,
	"enspace":      0.5,
	"thinspace":    3.0 / 18,
	"medspace":     4.0 / 18,
	"thickspace":   5.0 / 18,
	"negthinspace": -3.0 / 18,
}
