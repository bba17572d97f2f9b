package translate

import (
	"regexp"
	"strings"

	"github.com/kennyg/skillbrowser/internal/skill"
)

// Result is a parsed translation
type Result struct {
	NameZh        string `json:"nameZh"`
	DescriptionZh string `json:"descriptionZh"`
}

// Section labels the model is asked to emit, one per line.
const (
	labelName   = "名称"
	labelIntro  = "简介"
	labelTiming = "时机"
	labelCall   = "调用"
)

var (
	nameLineRe   = regexp.MustCompile(`^.*` + labelName + `[：:]\s*`)
	introLineRe  = regexp.MustCompile(`^.*` + labelIntro + `[：:]\s*`)
	timingLineRe = regexp.MustCompile(`^.*` + labelTiming + `[：:]\s*`)
	callLineRe   = regexp.MustCompile(`^.*` + labelCall + `[：:]\s*`)
)

// ParseReply turns the model's reply into a Result.
// Lines are matched by label; the name falls back to the skill name.
// Without any labelled section the reply body after the second line is used,
// then the original description.
func ParseReply(reply string, info skill.Info) Result {
	res := Result{NameZh: info.Name}

	lines := strings.Split(reply, "\n")
	var intro, timing, call string

	for _, line := range lines {
		switch {
		case strings.Contains(line, labelName):
			if name := strings.TrimSpace(nameLineRe.ReplaceAllString(line, "")); name != "" {
				res.NameZh = name
			}
		case strings.Contains(line, "1") && strings.Contains(line, labelIntro):
			intro = strings.TrimSpace(introLineRe.ReplaceAllString(line, ""))
		case strings.Contains(line, "2") && strings.Contains(line, labelTiming):
			timing = strings.TrimSpace(timingLineRe.ReplaceAllString(line, ""))
		case strings.Contains(line, "3") && strings.Contains(line, labelCall):
			call = strings.TrimSpace(callLineRe.ReplaceAllString(line, ""))
		}
	}

	if intro != "" || timing != "" || call != "" {
		var parts []string
		if intro != "" {
			parts = append(parts, labelIntro+"："+intro)
		}
		if timing != "" {
			parts = append(parts, labelTiming+"："+timing)
		}
		if call != "" {
			parts = append(parts, labelCall+"："+call)
		}
		res.DescriptionZh = strings.Join(parts, "\n")
		return res
	}

	// Older replies had no labels: name line, blank line, then prose.
	if len(lines) > 2 {
		res.DescriptionZh = strings.TrimSpace(strings.Join(lines[2:], " "))
	}
	if res.DescriptionZh == "" {
		res.DescriptionZh = info.Description
	}
	return res
}

// Section returns the rest of the first line containing "label：", or "".
func Section(description, label string) string {
	marker := label + "："
	for _, line := range strings.Split(description, "\n") {
		if _, rest, ok := strings.Cut(line, marker); ok {
			if rest = strings.TrimSpace(rest); rest != "" {
				return rest
			}
		}
	}
	return ""
}

// IntroAndTiming splits a structured translated description.
// ok is false for descriptions without the labelled sections.
func IntroAndTiming(description string) (intro, timing string, ok bool) {
	if !strings.Contains(description, labelIntro+"：") && !strings.Contains(description, labelTiming+"：") {
		return "", "", false
	}
	return Section(description, labelIntro), Section(description, labelTiming), true
}
