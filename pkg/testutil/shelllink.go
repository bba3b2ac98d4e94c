package testutil

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"
)

// ShellLink describes a .lnk fixture. Only the fields that drive target
// resolution are modelled.
type ShellLink struct {
	IDList       []byte // opaque item id list, skipped by readers
	LocalBase    string // LinkInfo local base path
	Suffix       string // LinkInfo common path suffix
	UnicodeInfo  bool   // also store unicode LinkInfo strings
	NetName      string // LinkInfo network share name
	RelativePath string // StringData relative path (unicode)
	EnvTarget    string // environment variable data block target
}

var shellLinkCLSID = []byte{
	0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
}

// BuildShellLink serialises the fixture in the shell link binary format
func BuildShellLink(l ShellLink) []byte {
	var flags uint32
	var body bytes.Buffer

	if l.IDList != nil {
		flags |= 1 << 0
		writeU16(&body, uint16(len(l.IDList)))
		body.Write(l.IDList)
	}
	if l.LocalBase != "" || l.NetName != "" {
		flags |= 1 << 1
		body.Write(buildLinkInfo(l))
	}
	if l.RelativePath != "" {
		flags |= 1<<3 | 1<<7
		units := utf16.Encode([]rune(l.RelativePath))
		writeU16(&body, uint16(len(units)))
		for _, u := range units {
			writeU16(&body, u)
		}
	}
	if l.EnvTarget != "" {
		flags |= 1 << 9
		block := make([]byte, 0x314)
		binary.LittleEndian.PutUint32(block[0:], 0x314)
		binary.LittleEndian.PutUint32(block[4:], 0xA0000001)
		copy(block[8:8+259], l.EnvTarget)
		units := utf16.Encode([]rune(l.EnvTarget))
		for i, u := range units {
			binary.LittleEndian.PutUint16(block[8+260+2*i:], u)
		}
		body.Write(block)
		writeU32(&body, 0)
	}

	header := make([]byte, 0x4C)
	binary.LittleEndian.PutUint32(header[0:], 0x4C)
	copy(header[4:20], shellLinkCLSID)
	binary.LittleEndian.PutUint32(header[0x14:], flags)

	return append(header, body.Bytes()...)
}

func buildLinkInfo(l ShellLink) []byte {
	headerSize := uint32(0x1C)
	if l.UnicodeInfo {
		headerSize = 0x24
	}

	var tail bytes.Buffer
	var infoFlags, volumeOff, localOff, netOff, suffixOff, localUniOff, suffixUniOff uint32
	offset := func() uint32 { return headerSize + uint32(tail.Len()) }

	if l.LocalBase != "" {
		infoFlags |= 1 << 0
		volumeOff = offset()
		// VolumeID: size, drive type, serial, label offset, empty label
		writeU32(&tail, 0x11)
		writeU32(&tail, 3)
		writeU32(&tail, 0x1234)
		writeU32(&tail, 0x10)
		tail.WriteByte(0)

		localOff = offset()
		if l.UnicodeInfo {
			tail.WriteString("?\x00")
		} else {
			tail.WriteString(l.LocalBase + "\x00")
		}
	}
	if l.NetName != "" {
		infoFlags |= 1 << 1
		netOff = offset()
		// CommonNetworkRelativeLink: size, flags, name offset, device offset, provider
		name := l.NetName + "\x00"
		writeU32(&tail, uint32(0x14+len(name)))
		writeU32(&tail, 0)
		writeU32(&tail, 0x14)
		writeU32(&tail, 0)
		writeU32(&tail, 0)
		tail.WriteString(name)
	}

	suffixOff = offset()
	tail.WriteString(l.Suffix + "\x00")

	if l.UnicodeInfo {
		localUniOff = offset()
		writeUTF16Z(&tail, l.LocalBase)
		suffixUniOff = offset()
		writeUTF16Z(&tail, l.Suffix)
	}

	var info bytes.Buffer
	writeU32(&info, headerSize+uint32(tail.Len()))
	writeU32(&info, headerSize)
	writeU32(&info, infoFlags)
	writeU32(&info, volumeOff)
	writeU32(&info, localOff)
	writeU32(&info, netOff)
	writeU32(&info, suffixOff)
	if l.UnicodeInfo {
		writeU32(&info, localUniOff)
		writeU32(&info, suffixUniOff)
	}
	info.Write(tail.Bytes())
	return info.Bytes()
}

func writeU16(b *bytes.Buffer, v uint16) {
	_ = binary.Write(b, binary.LittleEndian, v)
}

func writeU32(b *bytes.Buffer, v uint32) {
	_ = binary.Write(b, binary.LittleEndian, v)
}

func writeUTF16Z(b *bytes.Buffer, s string) {
	for _, u := range utf16.Encode([]rune(s)) {
		writeU16(b, u)
	}
	writeU16(b, 0)
}
