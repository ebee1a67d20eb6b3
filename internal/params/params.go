// Package params implements parameter resolution for tool invocations.
//
// Every operation resolves each parameter through the same precedence chain:
// call-time argument if provided and truthy, else the tool instance default
// if set, else the operation's built-in default, else the parameter is
// omitted from the outbound payload entirely. A falsy call-time value
// (false, 0, empty list) falls through to the next layer; this is
// deliberate, see DESIGN.md.
package params

// ============================================================
// Precedence Helpers
// ============================================================

// FirstString returns the first non-empty value in precedence order.
func FirstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// FirstInt returns the first non-zero value in precedence order.
func FirstInt(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

// FirstBool returns the first true value, or false when every layer is
// false/unset. A caller cannot override a true instance default back to
// false through the per-call path.
func FirstBool(values ...bool) bool {
	for _, v := range values {
		if v {
			return true
		}
	}
	return false
}

// FirstStrings returns the first non-empty slice in precedence order.
func FirstStrings(values ...[]string) []string {
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}

// ============================================================
// Call Argument Extraction
// ============================================================

// StringArg reads a string argument from JSON-decoded tool input.
func StringArg(input map[string]any, key string) string {
	v, _ := input[key].(string)
	return v
}

// IntArg reads an integer argument. JSON decoding yields float64 for
// numbers, so both forms are accepted.
func IntArg(input map[string]any, key string) int {
	switch v := input[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// BoolArg reads a boolean argument.
func BoolArg(input map[string]any, key string) bool {
	v, _ := input[key].(bool)
	return v
}

// StringsArg reads a string-list argument. JSON decoding yields []any.
func StringsArg(input map[string]any, key string) []string {
	switch v := input[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return nil
}

// MapArg reads an object argument.
func MapArg(input map[string]any, key string) map[string]any {
	v, _ := input[key].(map[string]any)
	return v
}

// ============================================================
// Outbound Payload
// ============================================================

// Payload is the outbound parameter set for one remote call. Unset values
// are never added, so nothing is ever transmitted as null. Resolved booleans
// are always transmitted, including false.
type Payload map[string]any

// New creates an empty payload.
func New() Payload {
	return make(Payload)
}

// PutString adds a string parameter, omitting empty values.
func (p Payload) PutString(key, value string) {
	if value != "" {
		p[key] = value
	}
}

// PutInt adds an integer parameter, omitting zero values.
func (p Payload) PutInt(key string, value int) {
	if value != 0 {
		p[key] = value
	}
}

// PutBool adds a boolean parameter. Booleans resolved through the precedence
// chain always have a value, so false is transmitted rather than omitted.
func (p Payload) PutBool(key string, value bool) {
	p[key] = value
}

// PutStrings adds a string-list parameter, omitting empty lists.
func (p Payload) PutStrings(key string, values []string) {
	if len(values) > 0 {
		p[key] = values
	}
}

// PutAny adds an arbitrary parameter, omitting nil.
func (p Payload) PutAny(key string, value any) {
	if value != nil {
		p[key] = value
	}
}

// Extend merges open extension fields into the payload. Fixed fields win on
// collision; nil extension values are dropped like any other unset value.
func (p Payload) Extend(extra map[string]any) {
	for k, v := range extra {
		if v == nil {
			continue
		}
		if _, exists := p[k]; !exists {
			p[k] = v
		}
	}
}
