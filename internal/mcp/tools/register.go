package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: typebridge_parse_type
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "typebridge_parse_type",
		Description: "Convert a TypeScript-style type annotation into a JSON Schema. Supports primitives, unions, intersections, arrays, Record<string, V>, Promise<T>, inline object literals with optional markers, and string/number literal types. Unsupported constructs degrade to an unconstrained schema instead of failing, so partial editor input is fine. Returns the schema plus a regenerated declaration for preview.",
	}, ToolParseType(d))

	// Tool 2: typebridge_generate_type
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "typebridge_generate_type",
		Description: "Render a JSON Schema document as readable TypeScript. Pass the schema as a JSON string; property order in the document is preserved in the output. Returns both a named declaration (interface or type alias) and the bare type expression.",
	}, ToolGenerateType(d))

	// Tool 3: typebridge_validate_samples
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "typebridge_validate_samples",
		Description: "Validate JSON documents against a type annotation. The annotation is converted to a JSON Schema and compiled once (compiled validators are cached), then every sample is checked. Returns per-sample valid/errors plus a summary. Use typebridge_parse_type first if you want to see how the annotation was interpreted.",
	}, ToolValidateSamples(d))

	// Tool 4: typebridge_infer_type
	sdkmcp.AddTool(srv, &sdkmcp.Tool{
		Name:        "typebridge_infer_type",
		Description: "Infer a type annotation from example JSON documents. Merges the shape of all samples (properties present in every sample become required; null-bearing fields stay optional) and returns the inferred JSON Schema plus a generated declaration. An optional jq selector narrows each sample to a subtree first, e.g. .data.items[] to type the items of a paginated response.",
	}, ToolInferType(d))
}
