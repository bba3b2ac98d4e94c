package shortcuts

import (
	"bytes"
	"encoding/binary"
	stderrors "errors"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/arthur-debert/residue/pkg/errors"
	"github.com/arthur-debert/residue/pkg/paths"
	"github.com/spf13/afero"
)

// Shell link binary layout ([MS-SHLLINK]).
const (
	linkHeaderSize = 0x4C

	flagHasLinkTargetIDList = 1 << 0
	flagHasLinkInfo         = 1 << 1
	flagHasName             = 1 << 2
	flagHasRelativePath     = 1 << 3
	flagHasWorkingDir       = 1 << 4
	flagHasArguments        = 1 << 5
	flagHasIconLocation     = 1 << 6
	flagIsUnicode           = 1 << 7
	flagHasExpString        = 1 << 9

	linkInfoVolumeIDAndLocalBasePath = 1 << 0
	linkInfoCommonNetworkRelative    = 1 << 1

	envBlockSignature = 0xA0000001
	envBlockSize      = 0x314
)

var linkCLSID = []byte{
	0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
}

var (
	errNotShellLink = stderrors.New("not a shell link")
	errTruncated    = stderrors.New("shell link is truncated")
	errNoTarget     = stderrors.New("shell link has no file system target")
)

var le = binary.LittleEndian

// LnkResolver reads shell link files and returns the file system path they
// point to. Advertised installer shortcuts carry no path and fail to resolve.
type LnkResolver struct {
	fs afero.Fs
}

// NewLnkResolver creates a resolver reading links from fs
func NewLnkResolver(fs afero.Fs) *LnkResolver {
	return &LnkResolver{fs: fs}
}

// Resolve implements types.LinkResolver
func (r *LnkResolver) Resolve(linkPath string) (string, error) {
	data, err := afero.ReadFile(r.fs, linkPath)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrResolutionFailed, "failed to read shell link").
			WithDetail("link", linkPath)
	}

	target, relative, err := parseLinkTarget(data)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrResolutionFailed, "failed to parse shell link").
			WithDetail("link", linkPath)
	}
	if relative {
		rel := filepath.FromSlash(strings.ReplaceAll(target, `\`, "/"))
		target = filepath.Join(filepath.Dir(linkPath), rel)
	}
	return target, nil
}

// parseLinkTarget extracts the target path. relative is set when the only
// path available is the relative one, which is relative to the link itself.
func parseLinkTarget(data []byte) (target string, relative bool, err error) {
	if len(data) < linkHeaderSize || le.Uint32(data) != linkHeaderSize || !bytes.Equal(data[4:20], linkCLSID) {
		return "", false, errNotShellLink
	}
	flags := le.Uint32(data[0x14:])
	off := linkHeaderSize

	if flags&flagHasLinkTargetIDList != 0 {
		if len(data) < off+2 {
			return "", false, errTruncated
		}
		off += 2 + int(le.Uint16(data[off:]))
	}

	var infoTarget string
	if flags&flagHasLinkInfo != 0 {
		if len(data) < off+4 {
			return "", false, errTruncated
		}
		size := int(le.Uint32(data[off:]))
		if size < 0x1C || off+size > len(data) {
			return "", false, errTruncated
		}
		infoTarget = parseLinkInfo(data[off : off+size])
		off += size
	}

	var relPath string
	unicode := flags&flagIsUnicode != 0
	for _, bit := range []uint32{flagHasName, flagHasRelativePath, flagHasWorkingDir, flagHasArguments, flagHasIconLocation} {
		if flags&bit == 0 {
			continue
		}
		s, n, ok := readCountedString(data, off, unicode)
		if !ok {
			break
		}
		if bit == flagHasRelativePath {
			relPath = s
		}
		off += n
	}

	if infoTarget != "" {
		return infoTarget, false, nil
	}
	if flags&flagHasExpString != 0 && off <= len(data) {
		if t := environmentTarget(data[off:]); t != "" {
			return paths.ExpandEnv(t), false, nil
		}
	}
	if relPath != "" {
		return relPath, true, nil
	}
	return "", false, errNoTarget
}

func parseLinkInfo(b []byte) string {
	headerSize := le.Uint32(b[4:])
	flags := le.Uint32(b[8:])
	localOff := le.Uint32(b[16:])
	netOff := le.Uint32(b[20:])
	suffixOff := le.Uint32(b[24:])

	var localUni, suffixUni uint32
	if headerSize >= 0x24 && len(b) >= 0x24 {
		localUni = le.Uint32(b[28:])
		suffixUni = le.Uint32(b[32:])
	}

	suffix := ansiString(b, suffixOff)
	if suffixUni != 0 {
		suffix = utf16String(b, suffixUni)
	}

	if flags&linkInfoVolumeIDAndLocalBasePath != 0 {
		base := ansiString(b, localOff)
		if localUni != 0 {
			base = utf16String(b, localUni)
		}
		if base != "" {
			return joinSuffix(base, suffix)
		}
	}

	if flags&linkInfoCommonNetworkRelative != 0 && int(netOff)+0x14 <= len(b) {
		net := b[netOff:]
		nameOff := le.Uint32(net[8:])
		name := ansiString(net, nameOff)
		if nameOff > 0x14 && len(net) >= 0x1C {
			name = utf16String(net, le.Uint32(net[20:]))
		}
		if name != "" {
			return joinSuffix(name, suffix)
		}
	}
	return ""
}

// environmentTarget scans the extra data blocks for the environment variable
// target block
func environmentTarget(b []byte) string {
	for len(b) >= 8 {
		size := int(le.Uint32(b))
		if size < 8 || size > len(b) {
			return ""
		}
		if le.Uint32(b[4:]) == envBlockSignature && size >= envBlockSize {
			if t := utf16String(b[8+260:8+260+520], 0); t != "" {
				return t
			}
			return ansiString(b[8:8+260], 0)
		}
		b = b[size:]
	}
	return ""
}

func readCountedString(data []byte, off int, unicode bool) (string, int, bool) {
	if off+2 > len(data) {
		return "", 0, false
	}
	count := int(le.Uint16(data[off:]))
	width := 1
	if unicode {
		width = 2
	}
	end := off + 2 + count*width
	if end > len(data) {
		return "", 0, false
	}
	raw := data[off+2 : end]
	if unicode {
		return decodeUTF16(raw), end - off, true
	}
	return latin1(raw), end - off, true
}

func joinSuffix(base, suffix string) string {
	if suffix == "" || strings.HasSuffix(base, `\`) {
		return base + suffix
	}
	return base + `\` + suffix
}

func ansiString(b []byte, off uint32) string {
	if int(off) >= len(b) {
		return ""
	}
	raw := b[off:]
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return latin1(raw)
}

func utf16String(b []byte, off uint32) string {
	if int(off) >= len(b) {
		return ""
	}
	raw := b[off:]
	for i := 0; i+1 < len(raw); i += 2 {
		if raw[i] == 0 && raw[i+1] == 0 {
			raw = raw[:i]
			break
		}
	}
	return decodeUTF16(raw)
}

func decodeUTF16(raw []byte) string {
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = le.Uint16(raw[2*i:])
	}
	return string(utf16.Decode(units))
}

func latin1(raw []byte) string {
	runes := make([]rune, len(raw))
	for i, c := range raw {
		runes[i] = rune(c)
	}
	return string(runes)
}
