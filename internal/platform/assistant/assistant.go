// Package assistant implements the rule-based triage assistant: it maps
// free-text symptom descriptions to a fixed set of topic categories, routes
// each category to a medical specialty, and composes a canned reply
// recommending a doctor from the roster.
package assistant

import (
	"context"
	"fmt"
	"strings"
)

// Category is a symptom topic used only for routing to a specialty.
type Category string

const (
	CategoryHeart    Category = "heart"
	CategoryBrain    Category = "brain"
	CategoryChildren Category = "children"
	CategorySkin     Category = "skin"
	CategoryGeneral  Category = "general"
)

// categoryOrder fixes both the extraction result order and the composer's
// per-category reply priority.
var categoryOrder = []Category{
	CategoryHeart,
	CategoryBrain,
	CategoryChildren,
	CategorySkin,
	CategoryGeneral,
}

// triggerWords lists the substrings that activate each category. Matching is
// literal substring containment on the lowered text; nothing else counts.
var triggerWords = map[Category][]string{
	CategoryHeart:    {"heart", "chest pain", "palpitations", "blood pressure", "cardiovascular"},
	CategoryBrain:    {"headache", "migraine", "dizziness", "memory", "neurological", "brain"},
	CategoryChildren: {"child", "kid", "baby", "infant", "pediatric", "children"},
	CategorySkin:     {"skin", "rash", "acne", "dermatology", "dermatological", "eczema"},
	CategoryGeneral:  {"general", "checkup", "tired", "fatigue", "fever", "internal"},
}

// specialtyFor routes each category to the roster specialty it implies.
var specialtyFor = map[Category]string{
	CategoryHeart:    "Cardiology",
	CategoryBrain:    "Neurology",
	CategoryChildren: "Pediatrics",
	CategorySkin:     "Dermatology",
	CategoryGeneral:  "Internal Medicine",
}

// Canned conversational messages.
const (
	Greeting = "Hello! I'm your medical assistant..."
	Apology  = "I'm sorry, I encountered an error. Please try again."
)

// ExtractKeywords returns the categories whose trigger substrings occur in
// the text. The result preserves category declaration order, not input
// order, and is empty when nothing matches.
func ExtractKeywords(text string) []Category {
	lowered := strings.ToLower(text)

	var found []Category
	for _, category := range categoryOrder {
		for _, trigger := range triggerWords[category] {
			if strings.Contains(lowered, trigger) {
				found = append(found, category)
				break
			}
		}
	}
	return found
}

// DoctorRef identifies a recommended doctor.
type DoctorRef struct {
	ID        string
	Name      string
	Specialty string
}

// Roster resolves a specialty to the first matching doctor.
type Roster interface {
	FirstBySpecialty(ctx context.Context, specialty string) (DoctorRef, bool)
}

// Engine runs the extract/recommend/compose pipeline against a roster.
type Engine struct {
	roster Roster
}

func NewEngine(roster Roster) *Engine {
	return &Engine{roster: roster}
}

// Recommend walks the categories in extraction order and resolves the first
// one with a mapped specialty. The walk stops at that category even when the
// roster has no matching doctor; it does not fall through to the next
// category.
func (e *Engine) Recommend(ctx context.Context, categories []Category) (DoctorRef, bool) {
	for _, category := range categories {
		specialty, mapped := specialtyFor[category]
		if !mapped {
			continue
		}
		if d, ok := e.roster.FirstBySpecialty(ctx, specialty); ok {
			return d, true
		}
		return DoctorRef{}, false
	}
	return DoctorRef{}, false
}

// ComposeReply renders the assistant's reply. Precedence: clarification when
// no category matched, then a doctor recommendation, then a per-category
// canned reply in fixed priority order, then a generic triage fallback.
func ComposeReply(categories []Category, doctor *DoctorRef) string {
	if len(categories) == 0 {
		return "I'm not sure I understood your symptoms. Could you provide more details about what you're experiencing? For example, where is the pain located, or what symptoms are bothering you?"
	}

	if doctor != nil {
		return fmt.Sprintf("Based on your symptoms, I would recommend seeing %s, one of our %s specialists. Would you like me to help you book an appointment with them?", doctor.Name, doctor.Specialty)
	}

	has := make(map[Category]bool, len(categories))
	for _, c := range categories {
		has[c] = true
	}

	switch {
	case has[CategoryHeart]:
		return "It sounds like you might be experiencing heart-related symptoms. I'd recommend seeing one of our cardiologists who can properly evaluate your condition. Would you like me to show you our available cardiologists?"
	case has[CategoryBrain]:
		return "Those symptoms could be neurological in nature. Our neurologists are experienced in diagnosing and treating conditions like the ones you're describing. Would you like me to recommend a neurologist?"
	case has[CategoryChildren]:
		return "For your child's health concerns, I'd suggest consulting with one of our pediatric specialists who focus exclusively on children's health. Would you like me to show you our pediatricians?"
	case has[CategorySkin]:
		return "For skin-related concerns, our dermatologists would be the best specialists to consult. They can diagnose and treat a wide range of skin conditions. Would you like me to help you find a dermatologist?"
	case has[CategoryGeneral]:
		return "For general health concerns like these, our internal medicine doctors would be a good place to start. They can provide a comprehensive evaluation and refer you to specialists if needed. Would you like me to help you book with an internist?"
	}

	// Unreachable with the current closed category set; kept as the
	// documented triage fallback.
	return "Thank you for sharing. Based on what you've told me, I'd recommend speaking with a doctor who can properly evaluate your symptoms. Would you like me to help you find the right specialist?"
}

// Reply is the assistant's full answer for one user turn.
type Reply struct {
	Content  string
	Keywords []string
	DoctorID string
}

// Respond runs the full pipeline for one turn of user input.
func (e *Engine) Respond(ctx context.Context, text string) Reply {
	categories := ExtractKeywords(text)

	var doctorRef *DoctorRef
	var doctorID string
	if d, ok := e.Recommend(ctx, categories); ok {
		doctorRef = &d
		doctorID = d.ID
	}

	keywords := make([]string, 0, len(categories))
	for _, c := range categories {
		keywords = append(keywords, string(c))
	}

	return Reply{
		Content:  ComposeReply(categories, doctorRef),
		Keywords: keywords,
		DoctorID: doctorID,
	}
}
