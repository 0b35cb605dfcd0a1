package array

// Elem is the type set of the eight primitive element kinds an Array can
// store. uint16 is the 16-bit unsigned character kind; the integer kinds
// are fixed-width two's-complement and the float kinds are IEEE-754.
// The zero value of the instantiated type is the kind's zero value
// (false, the NUL character, or numeric zero).
type Elem interface {
	bool | uint16 | int8 | int16 | int32 | int64 | float32 | float64
}

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew       = "New"
	opFromSlice = "FromSliceN"
	opGet       = "Get"
	opRef       = "Ref"
	opReplace   = "Replace"
	opGetRange  = "GetRange"
	opSetRange  = "SetRange"
	opGetAll    = "GetAll"
)
