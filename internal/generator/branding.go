package generator

import (
	"fmt"

	"github.com/numanijaz119/Foxingfit-Smart-generator/internal/repository"
)

const pauseDelimiter = "[pause strong] [pause strong]"

var openingLines = map[repository.Discipline]string{
	repository.DisciplineKickboxing:   "Get ready to start your Foxing Fit Heavybag Training.",
	repository.DisciplinePowerYoga:    "Get ready to start your Foxing Fit Power Yoga Lesson.",
	repository.DisciplineCalisthenics: "Get ready to start your Foxing Fit Calisthenics workout.",
}

var closingLines = map[repository.Discipline]string{
	repository.DisciplineKickboxing:   "Stay Sharp, Stay Foxing Fit.",
	repository.DisciplinePowerYoga:    "Stay Flexible, Stay Foxing Fit.",
	repository.DisciplineCalisthenics: "Stay Strong, Stay Foxing Fit.",
}

func openingLine(d repository.Discipline) string {
	if line, ok := openingLines[d]; ok {
		return line
	}
	return "Get ready to start your Foxing Fit workout."
}

func closingLine(d repository.Discipline) string {
	if line, ok := closingLines[d]; ok {
		return line
	}
	return "Stay Fit, Stay Foxing Fit."
}

var specialHeaders = map[repository.CategoryRole]string{
	repository.RoleBonusRound:      "## 🎯 Surprise Round",
	repository.RoleChallenge:       "## 💪 MAX Challenge",
	repository.RoleTransitionS2S:   "## 🌊 Vinyasa Transition",
	repository.RoleTransitionS2Sit: "## 🌊 Vinyasa Transition",
}

// usesRoundNumbering reports whether a block of the given category gets
// a numbered round header. Warmup, cooldown and special-role blocks are
// announced by name instead.
func usesRoundNumbering(cat repository.Category) bool {
	if cat.Role.Special() {
		return false
	}
	return !isEssentialCategory(cat.Name)
}

// blockHeader renders the section header for one block: numbered rounds
// carry the script title, special rounds their fixed indicator, and
// structural blocks the plain category name.
func blockHeader(s repository.Script, round int) string {
	if h, ok := specialHeaders[s.Category.Role]; ok {
		return h
	}
	if usesRoundNumbering(s.Category) {
		return fmt.Sprintf("## Ronde %d: %s", round, s.Title)
	}
	return fmt.Sprintf("## %s", s.Category.DisplayName)
}
