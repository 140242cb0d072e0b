package rv

// PlaylistNodeType distinguishes container nodes from leaf playlists.
type PlaylistNodeType int32

const (
	NodeRoot     PlaylistNodeType = 0
	NodePlaylist PlaylistNodeType = 1
	NodeFolder   PlaylistNodeType = 2
)

// PlaylistItemType is the item oneof of a playlist entry.
type PlaylistItemType interface{ isPlaylistItemType() }

// PlaylistItemPresentation references a .pro document, either on disk or
// embedded in the playlist archive.
type PlaylistItemPresentation struct {
	URL                 *URL   // field 1
	LibraryRelativePath string // field 2
	ArrangementUUID     *UUID  // field 3

	unknown []byte
}

func (*PlaylistItemPresentation) isPlaylistItemType() {}

func (m *PlaylistItemPresentation) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.URL)
	b = appendString(b, 2, m.LibraryRelativePath)
	b = appendMsg(b, 3, m.ArrangementUUID)
	return append(b, m.unknown...)
}

func (m *PlaylistItemPresentation) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.URL = new(URL)
			r.msg(m.URL)
		case 2:
			m.LibraryRelativePath = r.str()
		case 3:
			m.ArrangementUUID = new(UUID)
			r.msg(m.ArrangementUUID)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// PlaylistItemHeader is a colored section divider.
type PlaylistItemHeader struct {
	Color *Color // field 1

	unknown []byte
}

func (*PlaylistItemHeader) isPlaylistItemType() {}

func (m *PlaylistItemHeader) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.Color)
	return append(b, m.unknown...)
}

func (m *PlaylistItemHeader) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Color = new(Color)
			r.msg(m.Color)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// PlaylistItemMedia references standalone media in a playlist.
type PlaylistItemMedia struct {
	Media *Media // field 1

	unknown []byte
}

func (*PlaylistItemMedia) isPlaylistItemType() {}

func (m *PlaylistItemMedia) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.Media)
	return append(b, m.unknown...)
}

func (m *PlaylistItemMedia) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Media = new(Media)
			r.msg(m.Media)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// PlaylistItem is one entry of a playlist node.
type PlaylistItem struct {
	UUID *UUID            // field 1
	Name string           // field 2
	Type PlaylistItemType // oneof, fields 5..7

	unknown []byte
}

func (m *PlaylistItem) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.UUID)
	b = appendString(b, 2, m.Name)
	switch t := m.Type.(type) {
	case *PlaylistItemPresentation:
		b = appendMsg(b, 5, t)
	case *PlaylistItemHeader:
		b = appendMsg(b, 6, t)
	case *PlaylistItemMedia:
		b = appendMsg(b, 7, t)
	case nil:
	}
	return append(b, m.unknown...)
}

func (m *PlaylistItem) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.UUID = new(UUID)
			r.msg(m.UUID)
		case 2:
			m.Name = r.str()
		case 5:
			t := new(PlaylistItemPresentation)
			r.msg(t)
			m.Type = t
		case 6:
			t := new(PlaylistItemHeader)
			r.msg(t)
			m.Type = t
		case 7:
			t := new(PlaylistItemMedia)
			r.msg(t)
			m.Type = t
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Playlist is one node of the playlist tree. Container nodes carry
// children; leaf nodes carry items.
type Playlist struct {
	UUID     *UUID            // field 1
	Name     string           // field 2
	Type     PlaylistNodeType // field 3
	Expanded bool             // field 4
	Children []*Playlist      // field 5
	Items    []*PlaylistItem  // field 6

	unknown []byte
}

func (m *Playlist) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.UUID)
	b = appendString(b, 2, m.Name)
	b = appendInt32(b, 3, int32(m.Type))
	b = appendBool(b, 4, m.Expanded)
	b = appendMsgs(b, 5, m.Children)
	b = appendMsgs(b, 6, m.Items)
	return append(b, m.unknown...)
}

func (m *Playlist) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.UUID = new(UUID)
			r.msg(m.UUID)
		case 2:
			m.Name = r.str()
		case 3:
			m.Type = PlaylistNodeType(r.i32())
		case 4:
			m.Expanded = r.boolean()
		case 5:
			c := new(Playlist)
			r.msg(c)
			m.Children = append(m.Children, c)
		case 6:
			i := new(PlaylistItem)
			r.msg(i)
			m.Items = append(m.Items, i)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// PlaylistDocument is the root message of a .proplaylist archive's data
// entry.
type PlaylistDocument struct {
	ApplicationInfo *ApplicationInfo // field 1
	RootNode        *Playlist        // field 2

	unknown []byte
}

func (m *PlaylistDocument) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.ApplicationInfo)
	b = appendMsg(b, 2, m.RootNode)
	return append(b, m.unknown...)
}

func (m *PlaylistDocument) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.ApplicationInfo = new(ApplicationInfo)
			r.msg(m.ApplicationInfo)
		case 2:
			m.RootNode = new(Playlist)
			r.msg(m.RootNode)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// MarshalPlaylistDocument encodes a playlist document body.
func MarshalPlaylistDocument(d *PlaylistDocument) []byte {
	return Marshal(d)
}

// UnmarshalPlaylistDocument decodes a playlist document body.
func UnmarshalPlaylistDocument(data []byte) (*PlaylistDocument, error) {
	d := new(PlaylistDocument)
	if err := Unmarshal(data, d); err != nil {
		return nil, err
	}
	return d, nil
}
