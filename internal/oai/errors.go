package oai

// TransportError reports that the generation HTTP exchange could not
// be completed: connection/timeout failures, body read failures, or a
// non-success status from the endpoint.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return "images API " + e.Endpoint + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedResponseError reports a success status whose body could not
// be decoded as the expected JSON shape.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return "malformed images response: " + e.Err.Error()
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
