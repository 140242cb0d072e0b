package rv

// Group is a named, colored band of cues (Verse 1, Chorus, and so on).
type Group struct {
	UUID                       *UUID   // field 1
	Name                       string  // field 2
	Color                      *Color  // field 3
	HotKey                     *HotKey // field 4
	ApplicationGroupIdentifier *UUID   // field 5
	ApplicationGroupName       string  // field 6

	unknown []byte
}

func (m *Group) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.UUID)
	b = appendString(b, 2, m.Name)
	b = appendMsg(b, 3, m.Color)
	b = appendMsg(b, 4, m.HotKey)
	b = appendMsg(b, 5, m.ApplicationGroupIdentifier)
	b = appendString(b, 6, m.ApplicationGroupName)
	return append(b, m.unknown...)
}

func (m *Group) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.UUID = new(UUID)
			r.msg(m.UUID)
		case 2:
			m.Name = r.str()
		case 3:
			m.Color = new(Color)
			r.msg(m.Color)
		case 4:
			m.HotKey = new(HotKey)
			r.msg(m.HotKey)
		case 5:
			m.ApplicationGroupIdentifier = new(UUID)
			r.msg(m.ApplicationGroupIdentifier)
		case 6:
			m.ApplicationGroupName = r.str()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// CueGroup binds a group to the cues it contains, by identifier.
type CueGroup struct {
	Group          *Group  // field 1
	CueIdentifiers []*UUID // field 2

	unknown []byte
}

func (m *CueGroup) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.Group)
	b = appendMsgs(b, 2, m.CueIdentifiers)
	return append(b, m.unknown...)
}

func (m *CueGroup) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Group = new(Group)
			r.msg(m.Group)
		case 2:
			u := new(UUID)
			r.msg(u)
			m.CueIdentifiers = append(m.CueIdentifiers, u)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Arrangement orders groups into a performance sequence.
type Arrangement struct {
	UUID             *UUID   // field 1
	Name             string  // field 2
	GroupIdentifiers []*UUID // field 3

	unknown []byte
}

func (m *Arrangement) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.UUID)
	b = appendString(b, 2, m.Name)
	b = appendMsgs(b, 3, m.GroupIdentifiers)
	return append(b, m.unknown...)
}

func (m *Arrangement) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.UUID = new(UUID)
			r.msg(m.UUID)
		case 2:
			m.Name = r.str()
		case 3:
			u := new(UUID)
			r.msg(u)
			m.GroupIdentifiers = append(m.GroupIdentifiers, u)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// CCLI is song licensing metadata.
type CCLI struct {
	Author        string // field 1
	ArtistCredits string // field 2
	SongTitle     string // field 3
	Publisher     string // field 4
	CopyrightYear uint32 // field 5
	SongNumber    uint32 // field 6
	Display       bool   // field 7

	unknown []byte
}

func (m *CCLI) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Author)
	b = appendString(b, 2, m.ArtistCredits)
	b = appendString(b, 3, m.SongTitle)
	b = appendString(b, 4, m.Publisher)
	b = appendUint32(b, 5, m.CopyrightYear)
	b = appendUint32(b, 6, m.SongNumber)
	b = appendBool(b, 7, m.Display)
	return append(b, m.unknown...)
}

func (m *CCLI) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Author = r.str()
		case 2:
			m.ArtistCredits = r.str()
		case 3:
			m.SongTitle = r.str()
		case 4:
			m.Publisher = r.str()
		case 5:
			m.CopyrightYear = r.u32()
		case 6:
			m.SongNumber = r.u32()
		case 7:
			m.Display = r.boolean()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// BibleReference identifies the passage a scripture presentation shows.
type BibleReference struct {
	BookIndex                      uint32 // field 1
	BookName                       string // field 2
	ChapterStart                   uint32 // field 3
	ChapterEnd                     uint32 // field 4
	VerseStart                     uint32 // field 5
	VerseEnd                       uint32 // field 6
	TranslationName                string // field 7
	TranslationDisplayAbbreviation string // field 8

	unknown []byte
}

func (m *BibleReference) marshal(b []byte) []byte {
	b = appendUint32(b, 1, m.BookIndex)
	b = appendString(b, 2, m.BookName)
	b = appendUint32(b, 3, m.ChapterStart)
	b = appendUint32(b, 4, m.ChapterEnd)
	b = appendUint32(b, 5, m.VerseStart)
	b = appendUint32(b, 6, m.VerseEnd)
	b = appendString(b, 7, m.TranslationName)
	b = appendString(b, 8, m.TranslationDisplayAbbreviation)
	return append(b, m.unknown...)
}

func (m *BibleReference) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.BookIndex = r.u32()
		case 2:
			m.BookName = r.str()
		case 3:
			m.ChapterStart = r.u32()
		case 4:
			m.ChapterEnd = r.u32()
		case 5:
			m.VerseStart = r.u32()
		case 6:
			m.VerseEnd = r.u32()
		case 7:
			m.TranslationName = r.str()
		case 8:
			m.TranslationDisplayAbbreviation = r.str()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// TimelineCueTrigger is the trigger oneof of a timeline cue.
type TimelineCueTrigger interface{ isTimelineCueTrigger() }

// TimelineTimeTrigger fires at an offset in seconds.
type TimelineTimeTrigger struct {
	Seconds float64 // field 2 on TimelineCue
}

func (*TimelineTimeTrigger) isTimelineCueTrigger() {}

// TimelineTimecodeTrigger fires at an external timecode.
type TimelineTimecodeTrigger struct {
	Time *TimecodeTime // field 3 on TimelineCue
}

func (*TimelineTimecodeTrigger) isTimelineCueTrigger() {}

// TimelineCue schedules an action on the presentation timeline.
type TimelineCue struct {
	UUID       *UUID              // field 1
	Trigger    TimelineCueTrigger // oneof, fields 2..3
	ActionUUID *UUID              // field 4

	unknown []byte
}

func (m *TimelineCue) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.UUID)
	switch t := m.Trigger.(type) {
	case *TimelineTimeTrigger:
		b = appendDouble(b, 2, t.Seconds)
	case *TimelineTimecodeTrigger:
		b = appendMsg(b, 3, t.Time)
	case nil:
	}
	b = appendMsg(b, 4, m.ActionUUID)
	return append(b, m.unknown...)
}

func (m *TimelineCue) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.UUID = new(UUID)
			r.msg(m.UUID)
		case 2:
			m.Trigger = &TimelineTimeTrigger{Seconds: r.f64()}
		case 3:
			t := new(TimecodeTime)
			r.msg(t)
			m.Trigger = &TimelineTimecodeTrigger{Time: t}
		case 4:
			m.ActionUUID = new(UUID)
			r.msg(m.ActionUUID)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// Timeline drives timed playback of cues.
type Timeline struct {
	PlaybackBehavior int32          // field 1
	Duration         float64        // field 2
	Loop             bool           // field 3
	Cues             []*TimelineCue // field 4

	unknown []byte
}

func (m *Timeline) marshal(b []byte) []byte {
	b = appendInt32(b, 1, m.PlaybackBehavior)
	b = appendDouble(b, 2, m.Duration)
	b = appendBool(b, 3, m.Loop)
	b = appendMsgs(b, 4, m.Cues)
	return append(b, m.unknown...)
}

func (m *Timeline) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.PlaybackBehavior = r.i32()
		case 2:
			m.Duration = r.f64()
		case 3:
			m.Loop = r.boolean()
		case 4:
			c := new(TimelineCue)
			r.msg(c)
			m.Cues = append(m.Cues, c)
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// ContentDestination routes a presentation to an output surface.
type ContentDestination int32

const (
	DestinationGlobal        ContentDestination = 0
	DestinationAnnouncements ContentDestination = 1
	DestinationStage         ContentDestination = 2
)

// Presentation is the root message of a .pro document.
type Presentation struct {
	ApplicationInfo     *ApplicationInfo   // field 1
	UUID                *UUID              // field 2
	Name                string             // field 3
	LastDateUsed        *Timestamp         // field 4
	LastModifiedDate    *Timestamp         // field 5
	Category            string             // field 6
	Notes               string             // field 7
	Background          *Background        // field 8
	ChordChart          *URL               // field 9
	SelectedArrangement *UUID              // field 10
	Arrangements        []*Arrangement     // field 11
	CueGroups           []*CueGroup        // field 12
	Cues                []*Cue             // field 13
	CCLI                *CCLI              // field 14
	BibleReference      *BibleReference    // field 15
	Timeline            *Timeline          // field 16
	Transition          *Transition        // field 17
	ContentDestination  ContentDestination // field 18
	MusicKey            string             // field 20

	unknown []byte
}

func (m *Presentation) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.ApplicationInfo)
	b = appendMsg(b, 2, m.UUID)
	b = appendString(b, 3, m.Name)
	b = appendMsg(b, 4, m.LastDateUsed)
	b = appendMsg(b, 5, m.LastModifiedDate)
	b = appendString(b, 6, m.Category)
	b = appendString(b, 7, m.Notes)
	b = appendMsg(b, 8, m.Background)
	b = appendMsg(b, 9, m.ChordChart)
	b = appendMsg(b, 10, m.SelectedArrangement)
	b = appendMsgs(b, 11, m.Arrangements)
	b = appendMsgs(b, 12, m.CueGroups)
	b = appendMsgs(b, 13, m.Cues)
	b = appendMsg(b, 14, m.CCLI)
	b = appendMsg(b, 15, m.BibleReference)
	b = appendMsg(b, 16, m.Timeline)
	b = appendMsg(b, 17, m.Transition)
	b = appendInt32(b, 18, int32(m.ContentDestination))
	b = appendString(b, 20, m.MusicKey)
	return append(b, m.unknown...)
}

func (m *Presentation) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.ApplicationInfo = new(ApplicationInfo)
			r.msg(m.ApplicationInfo)
		case 2:
			m.UUID = new(UUID)
			r.msg(m.UUID)
		case 3:
			m.Name = r.str()
		case 4:
			m.LastDateUsed = new(Timestamp)
			r.msg(m.LastDateUsed)
		case 5:
			m.LastModifiedDate = new(Timestamp)
			r.msg(m.LastModifiedDate)
		case 6:
			m.Category = r.str()
		case 7:
			m.Notes = r.str()
		case 8:
			m.Background = new(Background)
			r.msg(m.Background)
		case 9:
			m.ChordChart = new(URL)
			r.msg(m.ChordChart)
		case 10:
			m.SelectedArrangement = new(UUID)
			r.msg(m.SelectedArrangement)
		case 11:
			a := new(Arrangement)
			r.msg(a)
			m.Arrangements = append(m.Arrangements, a)
		case 12:
			g := new(CueGroup)
			r.msg(g)
			m.CueGroups = append(m.CueGroups, g)
		case 13:
			c := new(Cue)
			r.msg(c)
			m.Cues = append(m.Cues, c)
		case 14:
			m.CCLI = new(CCLI)
			r.msg(m.CCLI)
		case 15:
			m.BibleReference = new(BibleReference)
			r.msg(m.BibleReference)
		case 16:
			m.Timeline = new(Timeline)
			r.msg(m.Timeline)
		case 17:
			m.Transition = new(Transition)
			r.msg(m.Transition)
		case 18:
			m.ContentDestination = ContentDestination(r.i32())
		case 20:
			m.MusicKey = r.str()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// MarshalPresentation encodes a .pro document body.
func MarshalPresentation(p *Presentation) []byte {
	return Marshal(p)
}

// UnmarshalPresentation decodes a .pro document body.
func UnmarshalPresentation(data []byte) (*Presentation, error) {
	p := new(Presentation)
	if err := Unmarshal(data, p); err != nil {
		return nil, err
	}
	return p, nil
}
