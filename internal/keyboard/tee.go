package keyboard

// Tee fans every voice out to several factories, e.g. the built-in synth and
// a MIDI port. Nil factories are skipped.
type Tee []VoiceFactory

// NewVoice returns a voice that starts and stops one voice per factory.
// It returns nil when no factory produced a voice.
func (t Tee) NewVoice(note int) Voice {
	var voices multiVoice
	for _, f := range t {
		if f == nil {
			continue
		}
		if v := f.NewVoice(note); v != nil {
			voices = append(voices, v)
		}
	}
	if len(voices) == 0 {
		return nil
	}
	return voices
}

type multiVoice []Voice

func (m multiVoice) Start() {
	for _, v := range m {
		v.Start()
	}
}

func (m multiVoice) Stop() {
	for _, v := range m {
		v.Stop()
	}
}
