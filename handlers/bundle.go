package handlers

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	Booking    *BookingHandler
	Doctor     *DoctorHandler
	Suggestion *SuggestionHandler
	Messages   *MessagesHandler
}
