package fakecode

import "strings"

// Placeholders substituted in statement patterns.
const (
	primarySlot   = "${primary}"
	secondarySlot = "${secondary}"
)

//nolint:gochecknoglobals // Read-only template tables.
var (
	classOpenings = []string{
		"class DataProcessor {",
		"export class ServiceHandler {",
		"class AsyncManager implements IManager {",
		"export default class Controller {",
	}

	methodPrefixes = []string{
		"private async process",
		"public static handle",
		"protected async fetch",
		"private static async load",
	}

	fieldDeclarations = []string{
		"private readonly data",
		"protected static config",
		"private async handler",
		"public static readonly instance",
	}

	statementPatterns = []statementPattern{
		{text: "const ${primary}Data = await this.process${secondary}();", fallback: "Default"},
		{text: "if (this.validate${primary}()) { await this.handle${secondary}(); }", fallback: "Data"},
		{text: "result.data.${primary} = await this.transform${secondary}();", fallback: "Content"},
		{text: "this.logger.info('Processing ${primary}:', { status: true });"},
		{text: "await this.emit('${primary}Changed', result.data);"},
	}
)

// Fixed document fragments.
const (
	headerBlock = "/**\n" +
		" * @file Auto generated service handler\n" +
		" * @author System Generator\n" +
		" */"
	importInterfaces = "import { IManager, IProcessor } from './interfaces';"
	importUtils      = "import { Logger } from './utils';"
	resultInit       = "const result = { status: true, data: {} };"
	returnResult     = "return result;"
	methodNameSuffix = "Data"

	// NoOpStatement is emitted for a line without ideographs.
	NoOpStatement = "continue;"
)

type statementPattern struct {
	text string
	// fallback replaces the secondary slot when a line has a single ideograph.
	fallback string
}

func (p statementPattern) render(primary, secondary string) string {
	if secondary == "" {
		secondary = p.fallback
	}
	return strings.NewReplacer(primarySlot, primary, secondarySlot, secondary).Replace(p.text)
}

// ClassOpenings returns a copy of the class-opening templates.
func ClassOpenings() []string { return clone(classOpenings) }

// MethodPrefixes returns a copy of the method-signature prefixes.
func MethodPrefixes() []string { return clone(methodPrefixes) }

// FieldDeclarations returns a copy of the field-declaration templates.
func FieldDeclarations() []string { return clone(fieldDeclarations) }

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
