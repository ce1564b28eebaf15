// Package diag implements the core's typed diagnostic records: every
// fallible constructor in types, constant, expr, stmt and namespace returns
// (value, *diag.Error) rather than panicking, matching the error-chain
// design in DESIGN NOTES ("Error chain replaces thrown exceptions").
package diag

// Kind is a closed enumeration of diagnostic kinds, grouped below into
// lexing / literal parsing, type-sanity, type-checking, and serialization
// families; there are no preprocessing kinds.
type Kind int

const (
	// Lexing / literal parsing.
	BadCharacterSequence Kind = iota
	CharacterConstantTooShort
	BadUtf8
	BadNumberConstant
	IntegerConstantOutOfBounds

	// Type-sanity (shape) failures.
	DuplicateTag
	StructEmpty
	StructDuplicates
	EnumDuplicates
	BadAlignofArgument
	BadRestrictedType
	BadAtomicType

	// Type-checking (semantic) failures.
	ExprNotCondition
	CaseExprNonconstant
	CaseDuplicate
	BadOperatorTypes
	DivisionByZero
	MemberNotFound
	ArityMismatch

	// Serialization.
	Unserializable
)

var names = map[Kind]string{
	BadCharacterSequence:      "BadCharacterSequence",
	CharacterConstantTooShort: "CharacterConstantTooShort",
	BadUtf8:                   "BadUtf8",
	BadNumberConstant:         "BadNumberConstant",
	IntegerConstantOutOfBounds: "IntegerConstantOutOfBounds",
	DuplicateTag:              "DuplicateTag",
	StructEmpty:               "StructEmpty",
	StructDuplicates:          "StructDuplicates",
	EnumDuplicates:            "EnumDuplicates",
	BadAlignofArgument:        "BadAlignofArgument",
	BadRestrictedType:         "BadRestrictedType",
	BadAtomicType:             "BadAtomicType",
	ExprNotCondition:          "ExprNotCondition",
	CaseExprNonconstant:       "CaseExprNonconstant",
	CaseDuplicate:             "CaseDuplicate",
	BadOperatorTypes:          "BadOperatorTypes",
	DivisionByZero:            "DivisionByZero",
	MemberNotFound:            "MemberNotFound",
	ArityMismatch:             "ArityMismatch",
	Unserializable:            "Unserializable",
}

// String returns the diagnostic's stable kind-name, the only part of a
// diagnostic that is contractually part of the interface (message text is
// advisory per §7).
func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return "UnknownKind"
}
