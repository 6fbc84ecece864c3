package utils

import "github.com/google/uuid"

// maxTraceIDLength bounds caller-supplied trace ids echoed into logs and
// response headers.
const maxTraceIDLength = 64

// NewTraceID returns a time-ordered UUIDv7, falling back to a random v4.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TraceIDOrNew keeps candidate when it is a short token of letters, digits,
// '-', '_' and '.'; anything else is replaced by [NewTraceID].
func TraceIDOrNew(candidate string) string {
	if candidate == "" || len(candidate) > maxTraceIDLength {
		return NewTraceID()
	}

	for _, c := range candidate {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return NewTraceID()
		}
	}

	return candidate
}
