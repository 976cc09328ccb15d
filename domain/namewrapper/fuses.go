// Package namewrapper decodes the permission fuses burned on wrapped names.
package namewrapper

// Fuses is the 32-bit permission mask of a wrapped name. The low 16 bits are
// burned by the owner, the high 16 bits by the parent.
type Fuses uint32

const (
	CannotUnwrap          Fuses = 1 << 0
	CannotBurnFuses       Fuses = 1 << 1
	CannotTransfer        Fuses = 1 << 2
	CannotSetResolver     Fuses = 1 << 3
	CannotSetTtl          Fuses = 1 << 4
	CannotCreateSubdomain Fuses = 1 << 5
	CannotApprove         Fuses = 1 << 6

	ParentCannotControl Fuses = 1 << 16
	IsDotEth            Fuses = 1 << 17
	CanExtendExpiry     Fuses = 1 << 18

	ChildControlledFuses  Fuses = 0x0000FFFF
	ParentControlledFuses Fuses = 0xFFFF0000
)

var (
	namedChildFuses = []namedFuse{
		{"CANNOT_UNWRAP", CannotUnwrap},
		{"CANNOT_BURN_FUSES", CannotBurnFuses},
		{"CANNOT_TRANSFER", CannotTransfer},
		{"CANNOT_SET_RESOLVER", CannotSetResolver},
		{"CANNOT_SET_TTL", CannotSetTtl},
		{"CANNOT_CREATE_SUBDOMAIN", CannotCreateSubdomain},
		{"CANNOT_APPROVE", CannotApprove},
	}
	namedParentFuses = []namedFuse{
		{"PARENT_CANNOT_CONTROL", ParentCannotControl},
		{"IS_DOT_ETH", IsDotEth},
		{"CAN_EXTEND_EXPIRY", CanExtendExpiry},
	}
)

type namedFuse struct {
	name string
	bit  Fuses
}

func (f Fuses) Has(bit Fuses) bool {
	return f&bit == bit
}

// UnnamedFuses maps every reserved bit of a half to whether it is burned.
type UnnamedFuses map[Fuses]bool

type ChildFuses struct {
	CannotUnwrap          bool         `json:"CANNOT_UNWRAP"`
	CannotBurnFuses       bool         `json:"CANNOT_BURN_FUSES"`
	CannotTransfer        bool         `json:"CANNOT_TRANSFER"`
	CannotSetResolver     bool         `json:"CANNOT_SET_RESOLVER"`
	CannotSetTtl          bool         `json:"CANNOT_SET_TTL"`
	CannotCreateSubdomain bool         `json:"CANNOT_CREATE_SUBDOMAIN"`
	CannotApprove         bool         `json:"CANNOT_APPROVE"`
	CanDoEverything       bool         `json:"CAN_DO_EVERYTHING"`
	Unnamed               UnnamedFuses `json:"unnamed"`
}

type ParentFuses struct {
	ParentCannotControl bool         `json:"PARENT_CANNOT_CONTROL"`
	IsDotEth            bool         `json:"IS_DOT_ETH"`
	CanExtendExpiry     bool         `json:"CAN_EXTEND_EXPIRY"`
	Unnamed             UnnamedFuses `json:"unnamed"`
}

type DecodedFuses struct {
	Parent ParentFuses `json:"parent"`
	Child  ChildFuses  `json:"child"`
}

// Decode splits f into named flags and per-bit reserved flags.
func Decode(f Fuses) DecodedFuses {
	return DecodedFuses{
		Parent: ParentFuses{
			ParentCannotControl: f.Has(ParentCannotControl),
			IsDotEth:            f.Has(IsDotEth),
			CanExtendExpiry:     f.Has(CanExtendExpiry),
			Unnamed:             unnamed(f, ParentControlledFuses, namedParentFuses),
		},
		Child: ChildFuses{
			CannotUnwrap:          f.Has(CannotUnwrap),
			CannotBurnFuses:       f.Has(CannotBurnFuses),
			CannotTransfer:        f.Has(CannotTransfer),
			CannotSetResolver:     f.Has(CannotSetResolver),
			CannotSetTtl:          f.Has(CannotSetTtl),
			CannotCreateSubdomain: f.Has(CannotCreateSubdomain),
			CannotApprove:         f.Has(CannotApprove),
			CanDoEverything:       f&ChildControlledFuses == 0,
			Unnamed:               unnamed(f, ChildControlledFuses, namedChildFuses),
		},
	}
}

func unnamed(f, mask Fuses, named []namedFuse) UnnamedFuses {
	var namedMask Fuses
	for _, n := range named {
		namedMask |= n.bit
	}
	res := UnnamedFuses{}
	for i := 0; i < 32; i++ {
		bit := Fuses(1) << i
		if bit&mask == 0 || bit&namedMask != 0 {
			continue
		}
		res[bit] = f.Has(bit)
	}
	return res
}

// Names lists the names of the burned named fuses, child bits first.
func (f Fuses) Names() []string {
	var res []string
	for _, n := range append(append([]namedFuse{}, namedChildFuses...), namedParentFuses...) {
		if f.Has(n.bit) {
			res = append(res, n.name)
		}
	}
	return res
}

type WrapperState string

const (
	StateWrapped     WrapperState = "Wrapped"
	StateEmancipated WrapperState = "Emancipated"
	StateLocked      WrapperState = "Locked"
)

func GetWrapperState(f Fuses) WrapperState {
	if !f.Has(ParentCannotControl) {
		return StateWrapped
	}
	if !f.Has(CannotUnwrap) {
		return StateEmancipated
	}
	return StateLocked
}
