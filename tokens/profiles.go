package tokens

import "github.com/randalmurphal/tokenmaster/model"

// Profile holds per-character token ratios for one tokenizer family.
// Lower ratios mean the tokenizer packs more characters into each token.
type Profile struct {
	// CJK is tokens per CJK ideograph.
	CJK float64 `json:"cjk" yaml:"cjk"`

	// NonCJK is tokens per other character (~3.7 chars/token at 0.27).
	NonCJK float64 `json:"non_cjk" yaml:"non_cjk"`
}

// DefaultProfile applies to any identifier missing from the ratio table.
var DefaultProfile = Profile{CJK: 0.6, NonCJK: 0.27}

// family groups identifiers that share a tokenizer.
type family struct {
	name    string
	profile Profile
	ids     []model.ID

	// aliases are identifiers older callers send for the same family.
	// Most currently coincide with the canonical IDs; both forms stay valid.
	aliases []string
}

var families = []family{
	{
		// o200k-style vocabularies: efficient on English, middling on CJK.
		name:    "gpt",
		profile: Profile{CJK: 0.58, NonCJK: 0.26},
		ids:     []model.ID{model.GPT4o, model.GPT5},
		aliases: []string{"gpt-4o", "gpt-5"},
	},
	{
		name:    "claude",
		profile: Profile{CJK: 0.60, NonCJK: 0.28},
		ids:     []model.ID{model.Claude35Sonnet},
		aliases: []string{"claude-3-5-sonnet"},
	},
	{
		// Vocabularies trained heavily on Chinese.
		name:    "deepseek-qwen",
		profile: Profile{CJK: 0.45, NonCJK: 0.26},
		ids:     []model.ID{model.DeepSeekV3, model.Qwen25, model.Qwen3, model.Qwen3VL},
		aliases: []string{"deepseek-v3", "qwen-2.5", "qwen-3", "qwen-3-vl"},
	},
	{
		name:    "llama",
		profile: Profile{CJK: 0.65, NonCJK: 0.27},
		ids:     []model.ID{model.Llama31},
		aliases: []string{"llama-3.1"},
	},
}

// profileTable maps every canonical ID and alias to its family profile.
var profileTable = buildProfileTable(families)

func buildProfileTable(fams []family) map[string]Profile {
	table := make(map[string]Profile)
	for _, f := range fams {
		for _, id := range f.ids {
			table[string(id)] = f.profile
		}
		for _, alias := range f.aliases {
			table[alias] = f.profile
		}
	}
	return table
}

// ProfileFor returns the ratio profile for an identifier by exact match.
//
// Unknown identifiers, including the Gemini models, get DefaultProfile and
// ok == false.
func ProfileFor(id string) (Profile, bool) {
	if p, ok := profileTable[id]; ok {
		return p, true
	}
	return DefaultProfile, false
}

// FamilyFor returns the tokenizer family name for an identifier, or
// "default" when it falls back to DefaultProfile.
func FamilyFor(id string) string {
	for _, f := range families {
		for _, known := range f.ids {
			if string(known) == id {
				return f.name
			}
		}
		for _, alias := range f.aliases {
			if alias == id {
				return f.name
			}
		}
	}
	return "default"
}
