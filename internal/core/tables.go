package core

// MachineInfo names one ELF e_machine value.
type MachineInfo struct {
	ID   uint16
	Name string
	Desc string
}

// OSABIInfo names one ELF EI_OSABI value.
type OSABIInfo struct {
	ID   uint8
	Name string
	Desc string
}

// machines is sorted by ID ascending. Id 70 intentionally appears twice
// (upstream toolchains disagree on what it names); ByID returns the first
// match, which is acceptable per the format's design notes.
var machines = []MachineInfo{
	{0, "none", "No machine"},
	{1, "m32", "AT&T WE 32100"},
	{2, "sparc", "SPARC"},
	{3, "386", "Intel 80386"},
	{4, "68k", "Motorola 68000"},
	{5, "88k", "Motorola 88000"},
	{6, "486", "Intel 80486"},
	{7, "860", "Intel 80860"},
	{8, "mips", "MIPS I Architecture"},
	{9, "s370", "IBM System/370 Processor"},
	{10, "mips_rs3_le", "MIPS RS3000 Little-endian"},
	{15, "parisc", "Hewlett-Packard PA-RISC"},
	{17, "vpp500", "Fujitsu VPP500"},
	{18, "sparc32plus", "Enhanced instruction set SPARC"},
	{19, "960", "Intel 80960"},
	{20, "ppc", "PowerPC"},
	{21, "ppc64", "64-bit PowerPC"},
	{22, "s390", "IBM System/390 Processor"},
	{23, "spu", "IBM SPU/SPC"},
	{36, "v800", "NEC V800"},
	{37, "fr20", "Fujitsu FR20"},
	{38, "rh32", "TRW RH-32"},
	{39, "rce", "Motorola RCE"},
	{40, "arm", "Advanced RISC Machines ARM"},
	{41, "alpha", "Digital Alpha"},
	{42, "sh", "Hitachi SH"},
	{43, "sparcv9", "SPARC Version 9"},
	{44, "tricore", "Siemens TriCore embedded processor"},
	{45, "arc", "Argonaut RISC Core"},
	{46, "h8_300", "Hitachi H8/300"},
	{47, "h8_300h", "Hitachi H8/300H"},
	{48, "h8s", "Hitachi H8S"},
	{49, "h8_500", "Hitachi H8/500"},
	{50, "ia_64", "Intel IA-64 processor architecture"},
	{51, "mips_x", "Stanford MIPS-X"},
	{52, "coldfire", "Motorola ColdFire"},
	{53, "68hc12", "Motorola M68HC12"},
	{54, "mma", "Fujitsu MMA Multimedia Accelerator"},
	{55, "pcp", "Siemens PCP"},
	{56, "ncpu", "Sony nCPU embedded RISC processor"},
	{57, "ndr1", "Denso NDR1 microprocessor"},
	{58, "starcore", "Motorola Star*Core processor"},
	{59, "me16", "Toyota ME16 processor"},
	{60, "st100", "STMicroelectronics ST100 processor"},
	{61, "tinyj", "Advanced Logic Corp. TinyJ embedded processor family"},
	{62, "x86_64", "AMD x86-64 architecture"},
	{63, "pdsp", "Sony DSP Processor"},
	{64, "pdp10", "Digital Equipment Corp. PDP-10"},
	{65, "pdp11", "Digital Equipment Corp. PDP-11"},
	{66, "fx66", "Siemens FX66 microcontroller"},
	{67, "st9plus", "STMicroelectronics ST9+ 8/16 bit microcontroller"},
	{68, "st7", "STMicroelectronics ST7 8-bit microcontroller"},
	{69, "68hc16", "Motorola MC68HC16 microcontroller"},
	{70, "68hc11", "Motorola MC68HC11 microcontroller"},
	{70, "68hc11-dup", "Motorola MC68HC11 microcontroller (duplicate id)"},
	{71, "68hc08", "Motorola MC68HC08 microcontroller"},
	{72, "68hc05", "Motorola MC68HC05 microcontroller"},
	{73, "svx", "Silicon Graphics SVx"},
	{74, "st19", "STMicroelectronics ST19 8-bit microcontroller"},
	{75, "vax", "Digital VAX"},
	{76, "cris", "Axis Communications 32-bit embedded processor"},
	{77, "javelin", "Infineon Technologies 32-bit embedded processor"},
	{78, "firepath", "Element 14 64-bit DSP Processor"},
	{79, "zsp", "LSI Logic 16-bit DSP Processor"},
	{80, "mmix", "Donald Knuth's educational 64-bit processor"},
	{81, "huany", "Harvard University machine-independent object files"},
	{82, "prism", "SiTera Prism"},
	{83, "avr", "Atmel AVR 8-bit microcontroller"},
	{84, "fr30", "Fujitsu FR30"},
	{85, "d10v", "Mitsubishi D10V"},
	{86, "d30v", "Mitsubishi D30V"},
	{87, "v850", "NEC v850"},
	{88, "m32r", "Mitsubishi M32R"},
	{89, "mn10300", "Matsushita MN10300"},
	{90, "mn10200", "Matsushita MN10200"},
	{91, "pj", "picoJava"},
	{92, "openrisc", "OpenRISC 32-bit embedded processor"},
	{93, "arc_a5", "ARC Cores Tangent-A5"},
	{94, "xtensa", "Tensilica Xtensa Architecture"},
	{95, "videocore", "Alphamosaic VideoCore processor"},
	{96, "tmm_gpp", "Thompson Multimedia General Purpose Processor"},
	{97, "ns32k", "National Semiconductor 32000 series"},
	{98, "tpc", "Tenor Network TPC processor"},
	{99, "snp1k", "Trebia SNP 1000 processor"},
	{100, "st200", "STMicroelectronics ST200 microcontroller"},
	{101, "ip2k", "Ubicom IP2xxx microcontroller family"},
	{102, "max", "MAX Processor"},
	{103, "cr", "National Semiconductor CompactRISC microprocessor"},
	{104, "f2mc16", "Fujitsu F2MC16"},
	{105, "msp430", "Texas Instruments embedded microcontroller msp430"},
	{106, "blackfin", "Analog Devices Blackfin (DSP) processor"},
	{107, "se_c33", "S1C33 Family of Seiko Epson processors"},
	{108, "sep", "Sharp embedded microprocessor"},
	{109, "arca", "Arca RISC Microprocessor"},
	{110, "unicore", "Microprocessor series from PKU-Unity Ltd."},
	{0x9026, "alpha-nonstd", "Digital Alpha (non-standard)"},
	{0x9041, "m32r-nonstd", "Mitsubishi M32R (non-standard)"},
	{0x9080, "v850-nonstd", "NEC v850 (non-standard)"},
	{0xA390, "s390-nonstd", "IBM S/390 (non-standard)"},
	{0xBEEF, "cygnus_mn10300", "Matsushita MN10300 (Cygnus non-standard)"},
}

// osabis is sorted by ID ascending.
var osabis = []OSABIInfo{
	{0, "sysv", "UNIX System V ABI"},
	{1, "hpux", "HP-UX operating system"},
	{2, "netbsd", "NetBSD"},
	{3, "linux", "Linux"},
	{4, "hurd", "GNU Hurd"},
	{5, "86open", "86Open common IA32 ABI"},
	{6, "solaris", "Solaris"},
	{7, "aix", "AIX"},
	{8, "irix", "IRIX"},
	{9, "freebsd", "FreeBSD"},
	{10, "tru64", "Compaq TRU64 UNIX"},
	{11, "modesto", "Novell Modesto"},
	{12, "openbsd", "OpenBSD"},
	{13, "openvms", "OpenVMS"},
	{14, "nsk", "HP Non-Stop Kernel"},
	{15, "aros", "Amiga Research OS"},
	{97, "arm", "ARM"},
	{255, "standalone", "Standalone (embedded) application"},
}

// MachineByID returns the first table entry with the given id, or nil.
func MachineByID(id uint16) *MachineInfo {
	for i := range machines {
		if machines[i].ID == id {
			return &machines[i]
		}
		if machines[i].ID > id {
			break
		}
	}
	return nil
}

// MachineByName returns the table entry with the given short name, or nil.
func MachineByName(name string) *MachineInfo {
	for i := range machines {
		if machines[i].Name == name {
			return &machines[i]
		}
	}
	return nil
}

// OSABIByID returns the first table entry with the given id, or nil.
func OSABIByID(id uint8) *OSABIInfo {
	for i := range osabis {
		if osabis[i].ID == id {
			return &osabis[i]
		}
		if osabis[i].ID > id {
			break
		}
	}
	return nil
}

// OSABIByName returns the table entry with the given short name, or nil.
func OSABIByName(name string) *OSABIInfo {
	for i := range osabis {
		if osabis[i].Name == name {
			return &osabis[i]
		}
	}
	return nil
}
