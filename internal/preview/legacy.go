package preview

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/skinrender/pkg/colorcode"
	"github.com/Faultbox/skinrender/pkg/encoding"
)

// ErrBadLegacyResponse is returned for data that is not a legacy status
// kick packet.
var ErrBadLegacyResponse = errors.New("malformed legacy status response")

// legacyKick is the packet id pre-Netty servers answer a list ping with.
const legacyKick = 0xFF

// legacyMarker opens the null-separated 1.4+ response.
const legacyMarker = "§1\x00"

// ParseLegacyResponse decodes the kick packet a pre-Netty server sends back
// to a server-list ping. Both the null-separated 1.4+ form and the older
// "motd§online§max" form are accepted. Hostname and icon are left empty.
func ParseLegacyResponse(data []byte) (Status, error) {
	if len(data) < 3 || data[0] != legacyKick {
		return Status{}, fmt.Errorf("%w: no kick packet", ErrBadLegacyResponse)
	}
	n := int(binary.BigEndian.Uint16(data[1:3]))
	body := data[3:]
	if len(body) < n*2 {
		return Status{}, fmt.Errorf("%w: %d of %d payload bytes", ErrBadLegacyResponse, len(body), n*2)
	}
	text := encoding.UTF16BEToUTF8(body[:n*2])

	var motd, online, maxPlayers string
	if rest, ok := strings.CutPrefix(text, legacyMarker); ok {
		// protocol, version, motd, online, max
		fields := strings.Split(rest, "\x00")
		if len(fields) != 5 {
			return Status{}, fmt.Errorf("%w: %d fields", ErrBadLegacyResponse, len(fields))
		}
		motd, online, maxPlayers = fields[2], fields[3], fields[4]
	} else {
		fields := strings.Split(text, string(colorcode.SectionSign))
		if len(fields) < 3 {
			return Status{}, fmt.Errorf("%w: %d fields", ErrBadLegacyResponse, len(fields))
		}
		k := len(fields)
		motd = strings.Join(fields[:k-2], string(colorcode.SectionSign))
		online, maxPlayers = fields[k-2], fields[k-1]
	}

	st := Status{MOTD: motd}
	var err error
	if st.Online, err = strconv.Atoi(online); err != nil {
		return Status{}, fmt.Errorf("%w: online count %q", ErrBadLegacyResponse, online)
	}
	if st.Max, err = strconv.Atoi(maxPlayers); err != nil {
		return Status{}, fmt.Errorf("%w: max players %q", ErrBadLegacyResponse, maxPlayers)
	}
	return st, nil
}
