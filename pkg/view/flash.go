package view

// FlashKind selects the notification style on the page.
type FlashKind string

const (
	FlashInfo    FlashKind = "info"
	FlashSuccess FlashKind = "success"
	FlashWarning FlashKind = "warning"
	FlashError   FlashKind = "error"
)

// Valid reports whether the kind is one this app renders. The flash codec
// normalizes anything else before a kind ends up in a CSS class name.
func (k FlashKind) Valid() bool {
	switch k {
	case FlashInfo, FlashSuccess, FlashWarning, FlashError:
		return true
	}
	return false
}

// Flash is the one-shot notification shown after a redirect.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}

// AutoClear: confirmations dismiss themselves after a few seconds; warnings
// and errors stay on screen until the user navigates away.
func (f Flash) AutoClear() bool {
	return f.Kind == FlashSuccess || f.Kind == FlashInfo
}
