package opcode

// Z80 base instructions.
var z80Table = []Instruction{
	{"ld a", []byte{0x3E, 0x00}, KIND_IMM8},
	{"ld b", []byte{0x06, 0x00}, KIND_IMM8},
	{"ld c", []byte{0x0E, 0x00}, KIND_IMM8},
	{"ld d", []byte{0x16, 0x00}, KIND_IMM8},
	{"ld e", []byte{0x1E, 0x00}, KIND_IMM8},
	{"ld h", []byte{0x26, 0x00}, KIND_IMM8},
	{"ld l", []byte{0x2E, 0x00}, KIND_IMM8},
	{"add a", []byte{0xC6, 0x00}, KIND_IMM8},
	{"sub", []byte{0xD6, 0x00}, KIND_IMM8},
	{"and", []byte{0xE6, 0x00}, KIND_IMM8},
	{"or", []byte{0xF6, 0x00}, KIND_IMM8},
	{"xor", []byte{0xEE, 0x00}, KIND_IMM8},
	{"inc a", []byte{0x3C}, KIND_NONE},
	{"dec a", []byte{0x3D}, KIND_NONE},
	{"jp", []byte{0xC3, 0x00, 0x00}, KIND_IMM16},
	{"call", []byte{0xCD, 0x00, 0x00}, KIND_IMM16},
	{"ret", []byte{0xC9}, KIND_NONE},
	{"nop", []byte{0x00}, KIND_NONE},
	{"halt", []byte{0x76}, KIND_NONE},
	{"push af", []byte{0xF5}, KIND_NONE},
	{"pop af", []byte{0xF1}, KIND_NONE},
	{"push bc", []byte{0xC5}, KIND_NONE},
	{"pop bc", []byte{0xC1}, KIND_NONE},
	{"push de", []byte{0xD5}, KIND_NONE},
	{"pop de", []byte{0xD1}, KIND_NONE},
	{"push hl", []byte{0xE5}, KIND_NONE},
	{"pop hl", []byte{0xE1}, KIND_NONE},
	{"ld (hl),n", []byte{0x36, 0x00}, KIND_IMM8},
	{"ld a,(hl)", []byte{0x7E}, KIND_NONE},
	{"ld (hl),a", []byte{0x77}, KIND_NONE},
	{"ld a,b", []byte{0x78}, KIND_NONE},
	{"ld a,c", []byte{0x79}, KIND_NONE},
	{"ld a,d", []byte{0x7A}, KIND_NONE},
	{"ld a,e", []byte{0x7B}, KIND_NONE},
	{"ld a,h", []byte{0x7C}, KIND_NONE},
	{"ld a,l", []byte{0x7D}, KIND_NONE},
	{"inc b", []byte{0x04}, KIND_NONE},
	{"dec b", []byte{0x05}, KIND_NONE},
	{"inc c", []byte{0x0C}, KIND_NONE},
	{"dec c", []byte{0x0D}, KIND_NONE},
	{"add a,b", []byte{0x80}, KIND_NONE},
	{"add a,c", []byte{0x81}, KIND_NONE},
	{"add a,d", []byte{0x82}, KIND_NONE},
	{"add a,e", []byte{0x83}, KIND_NONE},
	{"sub b", []byte{0x90}, KIND_NONE},
	{"sub c", []byte{0x91}, KIND_NONE},
	{"and b", []byte{0xA0}, KIND_NONE},
	{"and c", []byte{0xA1}, KIND_NONE},
	{"or b", []byte{0xB0}, KIND_NONE},
	{"or c", []byte{0xB1}, KIND_NONE},
	{"xor b", []byte{0xA8}, KIND_NONE},
	{"xor c", []byte{0xA9}, KIND_NONE},
	{"ld bc,nn", []byte{0x01, 0x00, 0x00}, KIND_IMM16},
	{"ld de,nn", []byte{0x11, 0x00, 0x00}, KIND_IMM16},
	{"ld hl,nn", []byte{0x21, 0x00, 0x00}, KIND_IMM16},
	{"ld sp,nn", []byte{0x31, 0x00, 0x00}, KIND_IMM16},
	{"jr e", []byte{0x18, 0x00}, KIND_IMM8},
	{"jr nz,e", []byte{0x20, 0x00}, KIND_IMM8},
	{"jr z,e", []byte{0x28, 0x00}, KIND_IMM8},
	{"jr nc,e", []byte{0x30, 0x00}, KIND_IMM8},
	{"jr c,e", []byte{0x38, 0x00}, KIND_IMM8},
	{"ld a,(bc)", []byte{0x0A}, KIND_NONE},
	{"ld a,(de)", []byte{0x1A}, KIND_NONE},
	{"ld (bc),a", []byte{0x02}, KIND_NONE},
	{"ld (de),a", []byte{0x12}, KIND_NONE},
	{"add hl,bc", []byte{0x09}, KIND_NONE},
	{"add hl,de", []byte{0x19}, KIND_NONE},
	{"add hl,hl", []byte{0x29}, KIND_NONE},
	{"add hl,sp", []byte{0x39}, KIND_NONE},
	{"rlca", []byte{0x07}, KIND_NONE},
	{"rrca", []byte{0x0F}, KIND_NONE},
	{"rla", []byte{0x17}, KIND_NONE},
	{"rra", []byte{0x1F}, KIND_NONE},
	{"cp a", []byte{0xBF}, KIND_NONE},
	{"cp b", []byte{0xB8}, KIND_NONE},
	{"cp c", []byte{0xB9}, KIND_NONE},
	{"cp d", []byte{0xBA}, KIND_NONE},
	{"sbc a,b", []byte{0x98}, KIND_NONE},
	{"sbc a,c", []byte{0x99}, KIND_NONE},
	{"sbc a,d", []byte{0x9A}, KIND_NONE},
	{"sbc a,e", []byte{0x9B}, KIND_NONE},
	{"sbc a,h", []byte{0x9C}, KIND_NONE},
	{"sbc a,l", []byte{0x9D}, KIND_NONE},
	{"sbc a,a", []byte{0x9F}, KIND_NONE},
	{"sbc a,n", []byte{0xDE, 0x00}, KIND_IMM8},
	{"inc ix", []byte{0xDD, 0x23}, KIND_NONE},
	{"dec ix", []byte{0xDD, 0x2B}, KIND_NONE},
	{"inc iy", []byte{0xFD, 0x23}, KIND_NONE},
	{"dec iy", []byte{0xFD, 0x2B}, KIND_NONE},
	{"ld sp,hl", []byte{0xF9}, KIND_NONE},
	{"ld sp,ix", []byte{0xDD, 0xF9}, KIND_NONE},
	{"ld sp,iy", []byte{0xFD, 0xF9}, KIND_NONE},
	{"push ix", []byte{0xDD, 0xE5}, KIND_NONE},
	{"pop ix", []byte{0xDD, 0xE1}, KIND_NONE},
	{"push iy", []byte{0xFD, 0xE5}, KIND_NONE},
	{"pop iy", []byte{0xFD, 0xE1}, KIND_NONE},
	{"ldi", []byte{0xED, 0xA0}, KIND_NONE},
	{"ldd", []byte{0xED, 0xA8}, KIND_NONE},
	{"ldir", []byte{0xED, 0xB0}, KIND_NONE},
	{"lddr", []byte{0xED, 0xB8}, KIND_NONE},
	{"cpi", []byte{0xED, 0xA1}, KIND_NONE},
	{"cpd", []byte{0xED, 0xA9}, KIND_NONE},
	{"cpir", []byte{0xED, 0xB1}, KIND_NONE},
	{"cpdr", []byte{0xED, 0xB9}, KIND_NONE},
	{"bit 0,b", []byte{0xCB, 0x40}, KIND_NONE},
	{"bit 7,a", []byte{0xCB, 0x7F}, KIND_NONE},
	{"set 0,b", []byte{0xCB, 0xC0}, KIND_NONE},
	{"res 0,b", []byte{0xCB, 0x80}, KIND_NONE},
	{"ret nz", []byte{0xC0}, KIND_NONE},
	{"ret z", []byte{0xC8}, KIND_NONE},
	{"ret nc", []byte{0xD0}, KIND_NONE},
	{"ret c", []byte{0xD8}, KIND_NONE},
	{"call nz,nn", []byte{0xC4, 0x00, 0x00}, KIND_IMM16},
	{"call z,nn", []byte{0xCC, 0x00, 0x00}, KIND_IMM16},
	{"call nc,nn", []byte{0xD4, 0x00, 0x00}, KIND_IMM16},
	{"call c,nn", []byte{0xDC, 0x00, 0x00}, KIND_IMM16},
	{"add a,h", []byte{0x84}, KIND_NONE},
	{"add a,l", []byte{0x85}, KIND_NONE},
	{"sub d", []byte{0x92}, KIND_NONE},
	{"sub e", []byte{0x93}, KIND_NONE},
	{"sub h", []byte{0x94}, KIND_NONE},
	{"sub l", []byte{0x95}, KIND_NONE},
	{"rl b", []byte{0xCB, 0x10}, KIND_NONE},
	{"rr b", []byte{0xCB, 0x18}, KIND_NONE},
	{"sla b", []byte{0xCB, 0x20}, KIND_NONE},
	{"sra b", []byte{0xCB, 0x28}, KIND_NONE},
	{"srl b", []byte{0xCB, 0x38}, KIND_NONE},
	{"bit 1,c", []byte{0xCB, 0x49}, KIND_NONE},
	{"set 1,c", []byte{0xCB, 0xC9}, KIND_NONE},
	{"res 1,c", []byte{0xCB, 0x89}, KIND_NONE},
	{"ld a,(nn)", []byte{0x3A, 0x00, 0x00}, KIND_IMM16},
	{"ld (nn),a", []byte{0x32, 0x00, 0x00}, KIND_IMM16},
	{"and d", []byte{0xA2}, KIND_NONE},
	{"and e", []byte{0xA3}, KIND_NONE},
	{"and h", []byte{0xA4}, KIND_NONE},
	{"and l", []byte{0xA5}, KIND_NONE},
	{"or d", []byte{0xB2}, KIND_NONE},
	{"or e", []byte{0xB3}, KIND_NONE},
	{"or h", []byte{0xB4}, KIND_NONE},
	{"or l", []byte{0xB5}, KIND_NONE},
	{"xor d", []byte{0xAA}, KIND_NONE},
	{"xor e", []byte{0xAB}, KIND_NONE},
	{"xor h", []byte{0xAC}, KIND_NONE},
	{"xor l", []byte{0xAD}, KIND_NONE},
	{"cp e", []byte{0xBB}, KIND_NONE},
	{"cp h", []byte{0xBC}, KIND_NONE},
	{"cp l", []byte{0xBD}, KIND_NONE},
	{"ld a,(ix+0)", []byte{0xDD, 0x7E, 0x00}, KIND_IMM8},
	{"ld (ix+0),a", []byte{0xDD, 0x77, 0x00}, KIND_IMM8},
	{"ld a,(iy+0)", []byte{0xFD, 0x7E, 0x00}, KIND_IMM8},
	{"ld (iy+0),a", []byte{0xFD, 0x77, 0x00}, KIND_IMM8},
	{"di", []byte{0xF3}, KIND_NONE},
	{"ei", []byte{0xFB}, KIND_NONE},
	{"cpl", []byte{0x2F}, KIND_NONE},
	{"scf", []byte{0x37}, KIND_NONE},
	{"ccf", []byte{0x3F}, KIND_NONE},
	{"ex de,hl", []byte{0xEB}, KIND_NONE},
	{"ex af,af'", []byte{0x08}, KIND_NONE},
	{"exx", []byte{0xD9}, KIND_NONE},
	{"ex (sp),hl", []byte{0xE3}, KIND_NONE},
	{"ex (sp),ix", []byte{0xDD, 0xE3}, KIND_NONE},
	{"ex (sp),iy", []byte{0xFD, 0xE3}, KIND_NONE},
	{"in a,(n)", []byte{0xDB, 0x00}, KIND_IMM8},
	{"out (n),a", []byte{0xD3, 0x00}, KIND_IMM8},
	{"add a,(ix+0)", []byte{0xDD, 0x86, 0x00}, KIND_IMM8},
	{"sub (ix+0)", []byte{0xDD, 0x96, 0x00}, KIND_IMM8},
	{"add a,(iy+0)", []byte{0xFD, 0x86, 0x00}, KIND_IMM8},
	{"sub (iy+0)", []byte{0xFD, 0x96, 0x00}, KIND_IMM8},
	{"rst 00h", []byte{0xC7}, KIND_NONE},
	{"rst 08h", []byte{0xCF}, KIND_NONE},
	{"rst 10h", []byte{0xD7}, KIND_NONE},
	{"rst 18h", []byte{0xDF}, KIND_NONE},
}

var adlTable = []Instruction{
	{"ld hl,(nnnnnn)", []byte{0xED, 0x6B, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"ld (nnnnnn),hl", []byte{0xED, 0x63, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"ld de,(nnnnnn)", []byte{0xED, 0x5B, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"ld (nnnnnn),de", []byte{0xED, 0x53, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"ld sp,(nnnnnn)", []byte{0xED, 0x7B, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"ld (nnnnnn),sp", []byte{0xED, 0x73, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"adc hl,sp", []byte{0xED, 0x7A}, KIND_NONE},
	{"sbc hl,sp", []byte{0xED, 0x72}, KIND_NONE},
	{"ld a,(ix+nn)", []byte{0xDD, 0x7E, 0x00, 0x00}, KIND_IMM16},
	{"ld (ix+nn),a", []byte{0xDD, 0x77, 0x00, 0x00}, KIND_IMM16},
	{"ld a,(iy+nn)", []byte{0xFD, 0x7E, 0x00, 0x00}, KIND_IMM16},
	{"ld (iy+nn),a", []byte{0xFD, 0x77, 0x00, 0x00}, KIND_IMM16},
	{"mlt bc", []byte{0xED, 0x4C}, KIND_NONE},
	{"mlt de", []byte{0xED, 0x5C}, KIND_NONE},
	{"mlt hl", []byte{0xED, 0x6C}, KIND_NONE},
	{"mlt sp", []byte{0xED, 0x7C}, KIND_NONE},
	{"swapnib a", []byte{0xED, 0x23}, KIND_NONE},
	{"ldirx", []byte{0xED, 0xB4}, KIND_NONE},
	{"lddrx", []byte{0xED, 0xBC}, KIND_NONE},
	{"cpirx", []byte{0xED, 0xB5}, KIND_NONE},
	{"cpdrx", []byte{0xED, 0xBD}, KIND_NONE},
	{"ld bc,nnnnnn", []byte{0x01, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"ld de,nnnnnn", []byte{0x11, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"ld hl,nnnnnn", []byte{0x21, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"ld sp,nnnnnn", []byte{0x31, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"adc hl,bc", []byte{0xED, 0x4A}, KIND_NONE},
	{"adc hl,de", []byte{0xED, 0x5A}, KIND_NONE},
	{"adc hl,hl", []byte{0xED, 0x6A}, KIND_NONE},
	{"tst a", []byte{0xED, 0x3C}, KIND_NONE},
	{"tst b", []byte{0xED, 0x04}, KIND_NONE},
	{"tst c", []byte{0xED, 0x0C}, KIND_NONE},
	{"push nn", []byte{0xED, 0x8A, 0x00, 0x00}, KIND_IMM16},
	{"push nnnnnn", []byte{0xED, 0x8B, 0x00, 0x00, 0x00}, KIND_IMM24},
}

// Conditional branches and 16-bit indirect loads.
var z80BranchTable = []Instruction{
	{"jp nz,nn", []byte{0xC2, 0x00, 0x00}, KIND_IMM16},
	{"jp z,nn", []byte{0xCA, 0x00, 0x00}, KIND_IMM16},
	{"jp nc,nn", []byte{0xD2, 0x00, 0x00}, KIND_IMM16},
	{"jp c,nn", []byte{0xDA, 0x00, 0x00}, KIND_IMM16},
	{"call po,nn", []byte{0xE4, 0x00, 0x00}, KIND_IMM16},
	{"call pe,nn", []byte{0xEC, 0x00, 0x00}, KIND_IMM16},
	{"call p,nn", []byte{0xF4, 0x00, 0x00}, KIND_IMM16},
	{"call m,nn", []byte{0xFC, 0x00, 0x00}, KIND_IMM16},
	{"ret po", []byte{0xE0}, KIND_NONE},
	{"ret pe", []byte{0xE8}, KIND_NONE},
	{"ret p", []byte{0xF0}, KIND_NONE},
	{"ret m", []byte{0xF8}, KIND_NONE},
	{"ld hl,(nn)", []byte{0x2A, 0x00, 0x00}, KIND_IMM16},
	{"ld (nn),hl", []byte{0x22, 0x00, 0x00}, KIND_IMM16},
}

var leaTable = []Instruction{
	{"lea bc,ix+nn", []byte{0xDD, 0x01, 0x00, 0x00}, KIND_IMM16},
	{"lea bc,iy+nn", []byte{0xFD, 0x01, 0x00, 0x00}, KIND_IMM16},
	{"lea de,ix+nn", []byte{0xDD, 0x11, 0x00, 0x00}, KIND_IMM16},
	{"lea de,iy+nn", []byte{0xFD, 0x11, 0x00, 0x00}, KIND_IMM16},
	{"lea hl,ix+nn", []byte{0xDD, 0x21, 0x00, 0x00}, KIND_IMM16},
	{"lea hl,iy+nn", []byte{0xFD, 0x21, 0x00, 0x00}, KIND_IMM16},
	{"lea sp,ix+nn", []byte{0xDD, 0x31, 0x00, 0x00}, KIND_IMM16},
	{"lea sp,iy+nn", []byte{0xFD, 0x31, 0x00, 0x00}, KIND_IMM16},
}

// 24-bit index register loads and stores.
var indexTable = []Instruction{
	{"ld ix,nnnnnn", []byte{0xDD, 0x21, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"ld iy,nnnnnn", []byte{0xFD, 0x21, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"ld ix,(nnnnnn)", []byte{0xDD, 0x2A, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"ld iy,(nnnnnn)", []byte{0xFD, 0x2A, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"ld (nnnnnn),ix", []byte{0xDD, 0x22, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"ld (nnnnnn),iy", []byte{0xFD, 0x22, 0x00, 0x00, 0x00}, KIND_IMM24},
}

var blockTable = []Instruction{
	{"ini", []byte{0xED, 0xA2}, KIND_NONE},
	{"ind", []byte{0xED, 0xAA}, KIND_NONE},
	{"outi", []byte{0xED, 0xA3}, KIND_NONE},
	{"outd", []byte{0xED, 0xAB}, KIND_NONE},
	{"inir", []byte{0xED, 0xB2}, KIND_NONE},
	{"indr", []byte{0xED, 0xBA}, KIND_NONE},
	{"otir", []byte{0xED, 0xB3}, KIND_NONE},
	{"otdr", []byte{0xED, 0xBB}, KIND_NONE},
	{"neg", []byte{0xED, 0x44}, KIND_NONE},
	{"ld a,i", []byte{0xED, 0x57}, KIND_NONE},
	{"ld a,r", []byte{0xED, 0x5F}, KIND_NONE},
	{"ld i,a", []byte{0xED, 0x47}, KIND_NONE},
	{"ld r,a", []byte{0xED, 0x4F}, KIND_NONE},
	{"im 0", []byte{0xED, 0x46}, KIND_NONE},
	{"im 1", []byte{0xED, 0x56}, KIND_NONE},
	{"im 2", []byte{0xED, 0x5E}, KIND_NONE},
	{"retn", []byte{0xED, 0x45}, KIND_NONE},
	{"reti", []byte{0xED, 0x4D}, KIND_NONE},
}

// Undocumented Z80 forms: SLL and the IX/IY byte halves.
var undocumentedTable = []Instruction{
	{"sll b", []byte{0xCB, 0x30}, KIND_NONE},
	{"sll c", []byte{0xCB, 0x31}, KIND_NONE},
	{"sll d", []byte{0xCB, 0x32}, KIND_NONE},
	{"sll e", []byte{0xCB, 0x33}, KIND_NONE},
	{"sll h", []byte{0xCB, 0x34}, KIND_NONE},
	{"sll l", []byte{0xCB, 0x35}, KIND_NONE},
	{"sll (hl)", []byte{0xCB, 0x36}, KIND_NONE},
	{"sll a", []byte{0xCB, 0x37}, KIND_NONE},
	{"rld", []byte{0xED, 0x6F}, KIND_NONE},
	{"rrd", []byte{0xED, 0x67}, KIND_NONE},
	{"ld ixl,nn", []byte{0xDD, 0x2E, 0x00}, KIND_IMM8},
	{"ld ixh,nn", []byte{0xDD, 0x26, 0x00}, KIND_IMM8},
	{"ld iyl,nn", []byte{0xFD, 0x2E, 0x00}, KIND_IMM8},
	{"ld iyh,nn", []byte{0xFD, 0x26, 0x00}, KIND_IMM8},
	{"ld a,ixh", []byte{0xDD, 0x7C}, KIND_NONE},
	{"ld a,ixl", []byte{0xDD, 0x7D}, KIND_NONE},
	{"ld a,iyh", []byte{0xFD, 0x7C}, KIND_NONE},
	{"ld a,iyl", []byte{0xFD, 0x7D}, KIND_NONE},
	{"ld ixh,a", []byte{0xDD, 0x67}, KIND_NONE},
	{"ld ixl,a", []byte{0xDD, 0x6F}, KIND_NONE},
	{"ld iyh,a", []byte{0xFD, 0x67}, KIND_NONE},
	{"ld iyl,a", []byte{0xFD, 0x6F}, KIND_NONE},
}

var ez80Table = []Instruction{
	{"lea bc,sp+nn", []byte{0xED, 0x01, 0x00, 0x00}, KIND_IMM16},
	{"lea de,sp+nn", []byte{0xED, 0x11, 0x00, 0x00}, KIND_IMM16},
	{"lea hl,sp+nn", []byte{0xED, 0x21, 0x00, 0x00}, KIND_IMM16},
	{"ld u,nnnnnn", []byte{0xED, 0x6D, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"ld (nnnnnn),u", []byte{0xED, 0x65, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"ld u,(nnnnnn)", []byte{0xED, 0x6F, 0x00, 0x00, 0x00}, KIND_IMM24},
	{"push u", []byte{0xED, 0x75}, KIND_NONE},
	{"pop u", []byte{0xED, 0x7D}, KIND_NONE},
	{"mlt ix", []byte{0xED, 0xDC}, KIND_NONE},
	{"mlt iy", []byte{0xED, 0xFC}, KIND_NONE},
	{"tst bc", []byte{0xED, 0x04}, KIND_NONE},
	{"tst de", []byte{0xED, 0x14}, KIND_NONE},
	{"tst hl", []byte{0xED, 0x24}, KIND_NONE},
	{"tst sp", []byte{0xED, 0x34}, KIND_NONE},
	{"sub ixh", []byte{0xDD, 0x94}, KIND_NONE},
	{"sub ixl", []byte{0xDD, 0x95}, KIND_NONE},
	{"sub iyh", []byte{0xFD, 0x94}, KIND_NONE},
	{"sub iyl", []byte{0xFD, 0x95}, KIND_NONE},
	{"and ixh", []byte{0xDD, 0xA4}, KIND_NONE},
	{"and ixl", []byte{0xDD, 0xA5}, KIND_NONE},
	{"and iyh", []byte{0xFD, 0xA4}, KIND_NONE},
	{"and iyl", []byte{0xFD, 0xA5}, KIND_NONE},
	{"or ixh", []byte{0xDD, 0xB4}, KIND_NONE},
	{"or ixl", []byte{0xDD, 0xB5}, KIND_NONE},
	{"or iyh", []byte{0xFD, 0xB4}, KIND_NONE},
	{"or iyl", []byte{0xFD, 0xB5}, KIND_NONE},
	{"xor ixh", []byte{0xDD, 0xAC}, KIND_NONE},
	{"xor ixl", []byte{0xDD, 0xAD}, KIND_NONE},
	{"xor iyh", []byte{0xFD, 0xAC}, KIND_NONE},
	{"xor iyl", []byte{0xFD, 0xAD}, KIND_NONE},
	{"cp ixh", []byte{0xDD, 0xBC}, KIND_NONE},
	{"cp ixl", []byte{0xDD, 0xBD}, KIND_NONE},
	{"cp iyh", []byte{0xFD, 0xBC}, KIND_NONE},
	{"cp iyl", []byte{0xFD, 0xBD}, KIND_NONE},
	{"inc ixh", []byte{0xDD, 0x24}, KIND_NONE},
	{"inc ixl", []byte{0xDD, 0x2C}, KIND_NONE},
	{"inc iyh", []byte{0xFD, 0x24}, KIND_NONE},
	{"inc iyl", []byte{0xFD, 0x2C}, KIND_NONE},
	{"dec ixh", []byte{0xDD, 0x25}, KIND_NONE},
	{"dec ixl", []byte{0xDD, 0x2D}, KIND_NONE},
	{"dec iyh", []byte{0xFD, 0x25}, KIND_NONE},
	{"dec iyl", []byte{0xFD, 0x2D}, KIND_NONE},
}

