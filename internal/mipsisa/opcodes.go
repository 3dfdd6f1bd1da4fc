package mipsisa

// Primary opcode field values (word[31:26]), named after the MIPS-I
// assembly mnemonics they select.
const (
	OpRegister    = 0x00
	OpRegisterImm = 0x01 // bltz/bgez family
	OpJ           = 0x02
	OpJal         = 0x03
	OpBeq         = 0x04
	OpBne         = 0x05
	OpBlez        = 0x06
	OpBgtz        = 0x07
	OpAddI        = 0x08
	OpAddIU       = 0x09
	OpSltI        = 0x0a
	OpSltIU       = 0x0b
	OpAndI        = 0x0c
	OpOrI         = 0x0d
	OpXorI        = 0x0e
	OpLui         = 0x0f
	OpCop0        = 0x10
	OpCop1        = 0x11
	OpCop2        = 0x12
	OpCop3        = 0x13
	OpLb          = 0x20
	OpLh          = 0x21
	OpLwl         = 0x22
	OpLw          = 0x23
	OpLbu         = 0x24
	OpLhu         = 0x25
	OpLwr         = 0x26
	OpSb          = 0x28
	OpSh          = 0x29
	OpSwl         = 0x2a
	OpSw          = 0x2b
	OpSwr         = 0x2e
	OpLCoProc     = 0x30
	OpSwCoProc    = 0x38
)

// R-type function field values (word[5:0], valid when opcode == OpRegister).
const (
	FnSll     = 0x00
	FnSrl     = 0x02
	FnSra     = 0x03
	FnSllv    = 0x04
	FnSrlv    = 0x06
	FnSrav    = 0x07
	FnJr      = 0x08
	FnJalr    = 0x09
	FnMovz    = 0x0a
	FnMovn    = 0x0b
	FnSyscall = 0x0c
	FnBreak   = 0x0d
	FnMfhi    = 0x10
	FnMthi    = 0x11
	FnMflo    = 0x12
	FnMtlo    = 0x13
	FnMult    = 0x18
	FnMultu   = 0x19
	FnDiv     = 0x1a
	FnDivu    = 0x1b
	FnAdd     = 0x20
	FnAddu    = 0x21
	FnSub     = 0x22
	FnSubu    = 0x23
	FnAnd     = 0x24
	FnOr      = 0x25
	FnXor     = 0x26
	FnNor     = 0x27
	FnSlt     = 0x2a
	FnSltu    = 0x2b
)

// COP0 operation field values (word[25:21], valid when the instruction
// decodes as Cop with Cop==0).
const (
	Cop0Mf  = 0x00 // mfc0
	Cop0Mt  = 0x04 // mtc0
	Cop0Co  = 0x10 // eret and other CO-class operations, func field in low bits
)

// RegisterImm sub-op values (word[20:16], valid when Opcode == OpRegisterImm):
// the bltz/bgez/bltzal/bgezal family shares the primary opcode 0x01 and is
// distinguished by the rt field instead of a function field.
const (
	RegImmBltz   = 0x00
	RegImmBgez   = 0x01
	RegImmBltzal = 0x10
	RegImmBgezal = 0x11
)

var knownIOpcodes = map[uint8]bool{
	OpAddI: true, OpAddIU: true, OpSltI: true, OpSltIU: true,
	OpAndI: true, OpOrI: true, OpXorI: true, OpLui: true,
	OpBeq: true, OpBne: true, OpBlez: true, OpBgtz: true,
	OpRegisterImm: true,
	OpLb: true, OpLh: true, OpLwl: true, OpLw: true,
	OpLbu: true, OpLhu: true, OpLwr: true,
	OpSb: true, OpSh: true, OpSwl: true, OpSw: true, OpSwr: true,
}

var knownRFunctions = map[uint8]bool{
	FnSll: true, FnSrl: true, FnSra: true, FnSllv: true, FnSrlv: true, FnSrav: true,
	FnJr: true, FnJalr: true, FnMovz: true, FnMovn: true,
	FnSyscall: true, FnBreak: true,
	FnMfhi: true, FnMthi: true, FnMflo: true, FnMtlo: true,
	FnMult: true, FnMultu: true, FnDiv: true, FnDivu: true,
	FnAdd: true, FnAddu: true, FnSub: true, FnSubu: true,
	FnAnd: true, FnOr: true, FnXor: true, FnNor: true,
	FnSlt: true, FnSltu: true,
}
