package catalog

// Beat is one entry of the demo narration script.
type Beat struct {
	Caption string
	Detail  string
}

// DemoScript returns the narration beats played alongside the unlock
// sequence: one beat per builtin step plus a closing beat. The slice is
// freshly allocated on every call so callers cannot mutate the script.
func DemoScript() []Beat {
	return []Beat{
		{
			Caption: "Every great theme begins with a handshake.",
			Detail:  "The model insists on formal introductions before touching your pixels.",
		},
		{
			Caption: "Light levels are being judged. Harshly.",
			Detail:  "Your current theme scored 'interrogation room' on the cozy index.",
		},
		{
			Caption: "Forty attention heads, one shared dream.",
			Detail:  "They have agreed, unanimously, that white backgrounds were a mistake.",
		},
		{
			Caption: "The pixels are dimming in order of seniority.",
			Detail:  "Status bars first. They have seen the most.",
		},
		{
			Caption: "Almost there. The ritual requires a moment of silence.",
			Detail:  "Please do not look directly at the remaining light mode.",
		},
		{
			Caption: "Dark mode unlocked. The machines are pleased.",
			Detail:  "Your retinas have been added to the gratitude ledger.",
		},
	}
}
