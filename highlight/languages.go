package highlight

var rustLanguage = &language{
	keywords: wordSet(
		"as", "async", "await", "break", "const", "continue", "crate", "dyn",
		"else", "enum", "extern", "false", "fn", "for", "if", "impl", "in",
		"let", "loop", "match", "mod", "move", "mut", "pub", "ref", "return",
		"self", "Self", "static", "struct", "super", "trait", "true", "type",
		"unsafe", "use", "where", "while", "abstract", "become", "box", "do",
		"final", "macro", "override", "priv", "typeof", "unsized", "virtual",
		"yield", "try",
	),
	types: wordSet(
		"i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64", "bool", "char", "str",
		"String", "Option", "Result", "Vec", "Box", "Rc", "Arc", "HashMap",
		"HashSet", "Some", "None", "Ok", "Err",
	),
	nestedComments: true,
	lifetimes:      true,
	multiline:      `"`,
	quotes:         `"`,
}

var goLanguage = &language{
	keywords: wordSet(
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var", "true", "false", "nil", "iota",
	),
	types: wordSet(
		"bool", "byte", "complex64", "complex128", "error", "float32",
		"float64", "int", "int8", "int16", "int32", "int64", "rune", "string",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr", "any",
		"comparable",
	),
	multiline: "`",
	raw:       "`",
	quotes:    "\"`",
}
