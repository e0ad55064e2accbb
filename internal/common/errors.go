// Package common defines the failure taxonomy shared across clipdrop
// components. Callers should use errors.As / errors.Is to match these values.
package common

import "errors"

// Kind classifies a terminal orchestration failure.
type Kind string

const (
	// KindConfiguration covers missing or malformed storage settings and an
	// unparsable max-upload-size preference.
	KindConfiguration Kind = "configuration"

	// KindPolicy covers admission-policy rejections: disallowed category,
	// oversize payload, empty allowed-category set.
	KindPolicy Kind = "policy"

	// KindClipboard covers unreadable files and unsupported clipboard content.
	KindClipboard Kind = "clipboard"

	// KindTransport covers opaque storage-transport failures, passed through
	// verbatim.
	KindTransport Kind = "transport"
)

// Failure is a classified, user-presentable error. Title is a short heading,
// the wrapped error carries the one-line message.
type Failure struct {
	Kind Kind
	Err  error
}

func (f *Failure) Error() string {
	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Title returns the short heading for the failure kind.
func (f *Failure) Title() string {
	switch f.Kind {
	case KindConfiguration:
		return "Configuration Error"
	case KindPolicy:
		return "Upload Not Allowed"
	case KindClipboard:
		return "Clipboard Error"
	case KindTransport:
		return "Upload Failed"
	}
	return "Error"
}

// ConfigurationError wraps err as a configuration failure.
func ConfigurationError(err error) error {
	return &Failure{Kind: KindConfiguration, Err: err}
}

// PolicyError wraps err as an admission-policy failure.
func PolicyError(err error) error {
	return &Failure{Kind: KindPolicy, Err: err}
}

// ClipboardError wraps err as a clipboard failure.
func ClipboardError(err error) error {
	return &Failure{Kind: KindClipboard, Err: err}
}

// TransportError wraps err as a storage-transport failure.
func TransportError(err error) error {
	return &Failure{Kind: KindTransport, Err: err}
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == kind
}

var (
	// ErrorNotFound is returned by stores when a requested record does not exist.
	ErrorNotFound = errors.New("not found")
)
