package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Operator ranks supplied by the identity layer
const (
	RankStaff   = "staff"
	RankManager = "manager"
)

// Business validation constants
const (
	MaxClientNameLength         = 120
	MaxNotesLength              = 500
	MaxSessionTypeLength        = 80
	MaxCancellationReasonLength = 500
)

// Conflict verdict messages shown to operators.
// Product copy is fixed in Arabic and must stay byte-identical across
// the submission and resolution surfaces.
const (
	MsgWholeVenueConflict = "الاستوديو محجوز بالكامل"
	MsgPartialConflict    = "يوجد حجز آخر في نفس التوقيت"
)
