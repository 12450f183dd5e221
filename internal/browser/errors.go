package browser

// User-visible messages. These are the only error texts the browser shows;
// causes go to the log.
const (
	MessageCategoryLoadFailed = "Failed to retrieve categories."
	MessageItemLoadFailed     = "Failed to retrieve plants for the selected category."
	MessageChooseCategory     = "Please choose a category."
)

// ErrorKind identifies which read failed
type ErrorKind int

const (
	// CategoryLoadError is any failed read of the category list
	CategoryLoadError ErrorKind = iota
	// ItemLoadError is any failed read of a category's plants
	ItemLoadError
)

// Message returns the static user-facing text for the kind
func (k ErrorKind) Message() string {
	switch k {
	case CategoryLoadError:
		return MessageCategoryLoadFailed
	case ItemLoadError:
		return MessageItemLoadFailed
	default:
		return "Failed to retrieve data."
	}
}

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case CategoryLoadError:
		return "CategoryLoadError"
	case ItemLoadError:
		return "ItemLoadError"
	default:
		return "UnknownLoadError"
	}
}

// LoadError is a failed read. Error returns only the static message;
// the cause stays reachable through Unwrap.
type LoadError struct {
	Kind ErrorKind
	Err  error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	return e.Kind.Message()
}

// Unwrap returns the underlying cause
func (e *LoadError) Unwrap() error {
	return e.Err
}
