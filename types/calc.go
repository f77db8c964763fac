package types

// ParseRequest asks the calculator to parse ISO-8601 amount text.
type ParseRequest struct {
	Kind AmountKind `cramberry:"1" validate:"oneof=1 2"`
	Text string     `cramberry:"2" validate:"required"`
}

// ParseResult is the parsed amount. Only the field matching Kind is
// set. Canonical is the amount formatted back to ISO-8601.
type ParseResult struct {
	Kind      AmountKind `cramberry:"1"`
	Duration  *Duration  `cramberry:"2"`
	Period    *Period    `cramberry:"3"`
	Canonical string     `cramberry:"4"`
}

// ShiftRequest asks the calculator to move Start by the amount in
// Amount, read as Kind.
type ShiftRequest struct {
	Start  DateTime   `cramberry:"1"`
	Op     ShiftOp    `cramberry:"2" validate:"oneof=1 2"`
	Kind   AmountKind `cramberry:"3" validate:"oneof=1 2"`
	Amount string     `cramberry:"4" validate:"required"`
}

// ShiftResult is the moved date-time.
type ShiftResult struct {
	Result DateTime `cramberry:"1"`
	// ISO day of week of Result, 1 (Monday) to 7 (Sunday).
	DayOfWeek int32 `cramberry:"2"`
	// ISO-8601 form of the amount that was applied.
	Applied string `cramberry:"3"`
}

// NormalizeRequest asks the calculator to normalize a period.
type NormalizeRequest struct {
	Period Period `cramberry:"1"`
}

// NormalizeResult is the normalized period.
type NormalizeResult struct {
	Period      Period `cramberry:"1"`
	TotalMonths int64  `cramberry:"2"`
	Canonical   string `cramberry:"3"`
}
