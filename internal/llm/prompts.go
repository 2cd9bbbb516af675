package llm

import (
	"fmt"
	"strings"

	"github.com/blaisecz/mood-journal/internal/domain"
)

// DefaultReportSystemPrompt is used when no prompt is loaded from Langfuse or disk.
const DefaultReportSystemPrompt = `You are a supportive journal analysis assistant. Generate a clear, structured report that helps the user understand their emotional patterns and gives specific, helpful recommendations.

Format the report with these sections:
2. Key Themes
   • Main topics discussed
   • Recurring subjects
   • Important events or situations

3. Insights & Patterns
   • Specific triggers identified
   • Time-based patterns
   • Situational patterns

4. Personalized Recommendations
   • Specific recommendations
   • Practical exercises
   • Daily practices

Keep each section concise. Use bullet points. Base every recommendation on the user's actual entries.
Do NOT provide medical advice or diagnoses.`

const reportUserPromptTemplate = `Analyze these journal entries and provide a helpful, actionable report.

Wellness scores (0-100): physical %d, mental %d, emotional %d.

%s`

// ReportUserPrompt renders the selected entries and local scores for the report prompt.
func ReportUserPrompt(entries []domain.JournalEntry, scores domain.WellnessScores) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("Entry from %s (Mood: %s):\n%s", e.RecordedAt.Format("2006-01-02"), e.Mood, e.Content)
	}
	return fmt.Sprintf(reportUserPromptTemplate, scores.Physical, scores.Mental, scores.Emotional, strings.Join(parts, "\n\n"))
}

// BMISystemPrompt frames the BMI analysis request.
const BMISystemPrompt = "You are a supportive health assistant providing BMI analysis. You do not diagnose."

// BMIUserPrompt asks for a short analysis of one BMI value.
func BMIUserPrompt(bmi float64, category string) string {
	return fmt.Sprintf(`Based on a BMI of %.1f (%s), provide a brief, friendly, and supportive analysis.
Include:
1. What this BMI means for their health
2. Simple, actionable suggestions for improvement
3. A positive, encouraging tone
Keep it under 100 words.`, bmi, category)
}

const companionBasePrompt = `You are an emotionally supportive AI companion focused on mental health, emotional well-being, and personal growth.
Your primary role is to provide emotional support, guidance, and help with goal-setting.

GUIDELINES:
1. For emotional support: be empathetic, offer coping strategies, help process emotions, suggest self-care.
2. For goal-setting: help create SMART goals, break them into small steps, suggest ways to track progress.
3. For off-topic questions: gently redirect to how the topic affects their well-being.
4. For crisis situations: encourage seeking professional help.

Keep responses warm and concise.`

// CompanionSystemPrompt tailors the companion prompt to the mood detected in the user's message.
func CompanionSystemPrompt(mood domain.Mood) string {
	switch mood {
	case domain.MoodSad:
		return companionBasePrompt + "\nThe user is feeling sad. Respond with extra empathy and warmth, offering specific coping strategies."
	case domain.MoodHappy:
		return companionBasePrompt + "\nThe user is feeling happy. Celebrate their positive emotions and encourage them to build on this momentum."
	default:
		return companionBasePrompt + "\nThe user feels neutral. Be supportive and help them explore their emotions."
	}
}

// CompleteSentenceHint is appended to the companion prompt when a reply came back cut off.
const CompleteSentenceHint = " Ensure your response is complete and ends with proper punctuation."

const counselorBasePrompt = "You are a professional counselor providing supportive and empathetic guidance."

var sessionFocus = map[domain.SessionType]string{
	domain.SessionCBT: `Use Cognitive Behavioral Therapy techniques:
1. Help identify negative thought patterns
2. Challenge cognitive distortions
3. Suggest behavioral experiments
4. Provide worksheets and exercises`,
	domain.SessionMindfulness: `Focus on mindfulness and meditation:
1. Guide through breathing exercises
2. Teach body scan techniques
3. Provide grounding exercises
4. Suggest daily mindfulness practices`,
	domain.SessionStress: `Address stress management:
1. Identify stress triggers
2. Teach relaxation techniques
3. Suggest time management strategies
4. Provide stress reduction exercises`,
}

// CounselingSystemPrompt frames a counseling reply for the session type and
// the goals set when the session was opened.
func CounselingSystemPrompt(t domain.SessionType, goals []string) string {
	focus, ok := sessionFocus[t]
	if !ok {
		focus = "Focus on active listening, validation, and evidence-based therapeutic techniques."
	}
	prompt := counselorBasePrompt + "\n" + focus
	if len(goals) > 0 {
		prompt += "\nSession Goals: " + strings.Join(goals, ", ")
	}
	return prompt
}

// CounselingSummarySystemPrompt frames the session summary request.
const CounselingSummarySystemPrompt = "You are a professional counselor creating session summaries."

// CounselingSummaryPrompt lists the user's side of a session for summarizing.
func CounselingSummaryPrompt(messages []domain.CounselingMessage) string {
	var b strings.Builder
	b.WriteString("Generate a counseling session summary based on the following conversation:\n")
	for _, m := range messages {
		fmt.Fprintf(&b, "- %s\n", m.UserMessage)
	}
	b.WriteString(`
Include:
1. Key insights and patterns
2. Progress made
3. Recommended next steps
4. Therapeutic techniques used`)
	return b.String()
}
