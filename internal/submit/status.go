package submit

// Status is the submission state as a closed sum: the controller holds
// exactly one of Idle, Loading or Failed at any moment. Consumers switch
// over all three; there is no fourth shape.
type Status interface {
	isStatus()
}

// Idle means nothing is in flight and no validation message is showing.
type Idle struct{}

// Loading carries the normalized URL whose launch is pending. RequestedURL
// is never empty.
type Loading struct {
	RequestedURL string
}

// Failed carries the validation message shown to the user. It clears on the
// next edit or submission.
type Failed struct {
	Message string
}

func (Idle) isStatus()    {}
func (Loading) isStatus() {}
func (Failed) isStatus()  {}
