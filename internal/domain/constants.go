package domain

// Default pool configuration
const (
	DefaultLaneCount    = 8
	DefaultLaneCapacity = 6
)

// Default policy values (minutes)
const (
	DefaultBookingLeadMinutes        = 60  // 1 hour
	DefaultCancellationWindowMinutes = 120 // 2 hours
)

// Business validation constants
const (
	MinLaneCount                = 1
	MaxLaneCount                = 50
	MinLaneCapacity             = 1
	MaxLaneCapacity             = 50
	MaxClassDurationMinutes     = 480 // 8 hours
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04" // HH:MM
	DateFormat = "2006-01-02"
)
