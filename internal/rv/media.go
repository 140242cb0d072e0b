package rv

// MediaScaleBehavior controls how media fits its drawing bounds.
type MediaScaleBehavior int32

const (
	ScaleFit     MediaScaleBehavior = 0
	ScaleFill    MediaScaleBehavior = 1
	ScaleStretch MediaScaleBehavior = 2
	ScaleCustom  MediaScaleBehavior = 3
)

// MediaDrawingProperties position media within an element.
type MediaDrawingProperties struct {
	ScaleBehavior MediaScaleBehavior // field 1
	ScaleAlignment int32             // field 2
	NativeSize    *Size              // field 3
	CustomBounds  *Rect              // field 4
	FlipMode      ElementFlipMode    // field 5

	unknown []byte
}

func (m *MediaDrawingProperties) marshal(b []byte) []byte {
	b = appendInt32(b, 1, int32(m.ScaleBehavior))
	b = appendInt32(b, 2, m.ScaleAlignment)
	b = appendMsg(b, 3, m.NativeSize)
	b = appendMsg(b, 4, m.CustomBounds)
	b = appendInt32(b, 5, int32(m.FlipMode))
	return append(b, m.unknown...)
}

func (m *MediaDrawingProperties) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.ScaleBehavior = MediaScaleBehavior(r.i32())
		case 2:
			m.ScaleAlignment = r.i32()
		case 3:
			m.NativeSize = new(Size)
			r.msg(m.NativeSize)
		case 4:
			m.CustomBounds = new(Rect)
			r.msg(m.CustomBounds)
		case 5:
			m.FlipMode = ElementFlipMode(r.i32())
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// MediaTransportProperties control playback of time-based media.
type MediaTransportProperties struct {
	PlayRate    float64 // field 1
	InPoint     float64 // field 2, seconds
	OutPoint    float64 // field 3, seconds
	EndBehavior int32   // field 4
	TimesToLoop int32   // field 5
	ShouldFadeIn bool   // field 6
	ShouldFadeOut bool  // field 7

	unknown []byte
}

func (m *MediaTransportProperties) marshal(b []byte) []byte {
	b = appendDouble(b, 1, m.PlayRate)
	b = appendDouble(b, 2, m.InPoint)
	b = appendDouble(b, 3, m.OutPoint)
	b = appendInt32(b, 4, m.EndBehavior)
	b = appendInt32(b, 5, m.TimesToLoop)
	b = appendBool(b, 6, m.ShouldFadeIn)
	b = appendBool(b, 7, m.ShouldFadeOut)
	return append(b, m.unknown...)
}

func (m *MediaTransportProperties) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.PlayRate = r.f64()
		case 2:
			m.InPoint = r.f64()
		case 3:
			m.OutPoint = r.f64()
		case 4:
			m.EndBehavior = r.i32()
		case 5:
			m.TimesToLoop = r.i32()
		case 6:
			m.ShouldFadeIn = r.boolean()
		case 7:
			m.ShouldFadeOut = r.boolean()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// MediaAudioProperties set volume and channel routing.
type MediaAudioProperties struct {
	Volume float64 // field 1
	IsMuted bool   // field 2

	unknown []byte
}

func (m *MediaAudioProperties) marshal(b []byte) []byte {
	b = appendDouble(b, 1, m.Volume)
	b = appendBool(b, 2, m.IsMuted)
	return append(b, m.unknown...)
}

func (m *MediaAudioProperties) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Volume = r.f64()
		case 2:
			m.IsMuted = r.boolean()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// MediaImageProperties mark a media reference as a still image.
type MediaImageProperties struct {
	unknown []byte
}

func (m *MediaImageProperties) marshal(b []byte) []byte {
	return append(b, m.unknown...)
}

func (m *MediaImageProperties) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		r.keep(&m.unknown)
	}
	return r.err
}

// MediaVideoProperties mark a media reference as a video file.
type MediaVideoProperties struct {
	FrameRate float64 // field 1
	HasAudio  bool    // field 2

	unknown []byte
}

func (m *MediaVideoProperties) marshal(b []byte) []byte {
	b = appendDouble(b, 1, m.FrameRate)
	b = appendBool(b, 2, m.HasAudio)
	return append(b, m.unknown...)
}

func (m *MediaVideoProperties) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.FrameRate = r.f64()
		case 2:
			m.HasAudio = r.boolean()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// MediaLiveVideoProperties reference a capture device.
type MediaLiveVideoProperties struct {
	DeviceIdentifier string // field 1
	DeviceName       string // field 2

	unknown []byte
}

func (m *MediaLiveVideoProperties) marshal(b []byte) []byte {
	b = appendString(b, 1, m.DeviceIdentifier)
	b = appendString(b, 2, m.DeviceName)
	return append(b, m.unknown...)
}

func (m *MediaLiveVideoProperties) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.DeviceIdentifier = r.str()
		case 2:
			m.DeviceName = r.str()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// MediaWebContentProperties reference a web page rendered as media.
type MediaWebContentProperties struct {
	Address string // field 1

	unknown []byte
}

func (m *MediaWebContentProperties) marshal(b []byte) []byte {
	b = appendString(b, 1, m.Address)
	return append(b, m.unknown...)
}

func (m *MediaWebContentProperties) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.Address = r.str()
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}

// MediaTypeProperties is the per-kind oneof of a media reference.
type MediaTypeProperties interface{ isMediaTypeProperties() }

// MediaImage selects still image behavior.
type MediaImage struct {
	Properties *MediaImageProperties // field 6 on Media
}

func (*MediaImage) isMediaTypeProperties() {}

// MediaVideo selects video file behavior.
type MediaVideo struct {
	Properties *MediaVideoProperties // field 7 on Media
}

func (*MediaVideo) isMediaTypeProperties() {}

// MediaLiveVideo selects live capture behavior.
type MediaLiveVideo struct {
	Properties *MediaLiveVideoProperties // field 8 on Media
}

func (*MediaLiveVideo) isMediaTypeProperties() {}

// MediaWebContent selects web page behavior.
type MediaWebContent struct {
	Properties *MediaWebContentProperties // field 9 on Media
}

func (*MediaWebContent) isMediaTypeProperties() {}

// Media references an external media resource plus its playback settings.
type Media struct {
	UUID      *UUID                     // field 1
	URL       *URL                      // field 2
	Drawing   *MediaDrawingProperties   // field 3
	Transport *MediaTransportProperties // field 4
	Audio     *MediaAudioProperties     // field 5
	Type      MediaTypeProperties       // oneof, fields 6..9

	unknown []byte
}

func (m *Media) marshal(b []byte) []byte {
	b = appendMsg(b, 1, m.UUID)
	b = appendMsg(b, 2, m.URL)
	b = appendMsg(b, 3, m.Drawing)
	b = appendMsg(b, 4, m.Transport)
	b = appendMsg(b, 5, m.Audio)
	switch t := m.Type.(type) {
	case *MediaImage:
		b = appendMsg(b, 6, t.Properties)
	case *MediaVideo:
		b = appendMsg(b, 7, t.Properties)
	case *MediaLiveVideo:
		b = appendMsg(b, 8, t.Properties)
	case *MediaWebContent:
		b = appendMsg(b, 9, t.Properties)
	case nil:
	}
	return append(b, m.unknown...)
}

func (m *Media) unmarshal(data []byte) error {
	r := reader{buf: data}
	for r.next() {
		switch r.num {
		case 1:
			m.UUID = new(UUID)
			r.msg(m.UUID)
		case 2:
			m.URL = new(URL)
			r.msg(m.URL)
		case 3:
			m.Drawing = new(MediaDrawingProperties)
			r.msg(m.Drawing)
		case 4:
			m.Transport = new(MediaTransportProperties)
			r.msg(m.Transport)
		case 5:
			m.Audio = new(MediaAudioProperties)
			r.msg(m.Audio)
		case 6:
			p := new(MediaImageProperties)
			r.msg(p)
			m.Type = &MediaImage{Properties: p}
		case 7:
			p := new(MediaVideoProperties)
			r.msg(p)
			m.Type = &MediaVideo{Properties: p}
		case 8:
			p := new(MediaLiveVideoProperties)
			r.msg(p)
			m.Type = &MediaLiveVideo{Properties: p}
		case 9:
			p := new(MediaWebContentProperties)
			r.msg(p)
			m.Type = &MediaWebContent{Properties: p}
		default:
			r.keep(&m.unknown)
		}
	}
	return r.err
}
