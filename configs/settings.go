package configs

const SettingsSchema = `
program?:  string
phases?:   [...int]
inputs?:   [...int]
feedback?: bool
db?:       string
`

type Settings struct {
	Program  string  `json:"program"`
	Phases   []int64 `json:"phases"`
	Inputs   []int64 `json:"inputs"`
	Feedback bool    `json:"feedback"`
	DB       string  `json:"db"`
}

// LoadSettings reads each key from the first file that defines it.
func LoadSettings(paths []string) (settings Settings, err error) {
	if len(paths) == 0 {
		return
	}
	loader := NewLoader(paths, SettingsSchema)
	if settings.Program, err = First[string](loader, "program"); err != nil {
		return
	}
	if settings.Phases, err = First[[]int64](loader, "phases"); err != nil {
		return
	}
	if settings.Inputs, err = First[[]int64](loader, "inputs"); err != nil {
		return
	}
	if settings.Feedback, err = First[bool](loader, "feedback"); err != nil {
		return
	}
	if settings.DB, err = First[string](loader, "db"); err != nil {
		return
	}
	return
}
