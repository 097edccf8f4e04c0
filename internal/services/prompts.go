package services

import (
	"encoding/json"
	"fmt"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/repos"
)

// Prompt builders are pure functions of their inputs. Each embeds the
// retrieved rows verbatim (no truncation, no reordering) and states the
// exact output shape the agent's parser expects.

// SkillGap records one skill where the employee's score falls short of the
// role requirement.
type SkillGap struct {
	SkillName     string `json:"skill_name"`
	CurrentScore  int    `json:"current_score"`
	RequiredScore int    `json:"required_score"`
}

// RankedCourse pairs a course id with its name for prompt embedding and
// name-to-id resolution of the model's answer.
type RankedCourse struct {
	CourseID   uint   `json:"course_id"`
	CourseName string `json:"course_name"`
	SkillName  string `json:"skill_name"`
}

func jsonBlock(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func buildLearningPathPrompt(employeeName, roleName string, gaps []SkillGap, courses []RankedCourse) string {
	return "You are an AI Learning Path Designer. Create a personalized, ranked learning path for an employee based on their skill gaps.\n" +
		"Employee Name: " + employeeName + "\n" +
		"Role: " + roleName + "\n" +
		"Skill Gaps: " + jsonBlock(gaps) + "\n" +
		"Available Courses: " + jsonBlock(courses) + "\n" +
		"Instructions: Order the courses so prerequisite skills come first. Respond with ONLY a JSON array of the course names in the correct logical order, for example [\"Course A\", \"Course B\"]. Do not add commentary."
}

func buildProfilePrompt(employee interface{}, completions []repos.CourseHistoryRow, performance []repos.AttemptHistoryRow) string {
	return "You are an AI Profile Agent. Your task is to analyze an employee's comprehensive data to infer latent skill vectors and produce a structured profile.\n\n" +
		"Here is the employee's disparate data:\n" +
		"- HR Profile and Initial Scores: " + jsonBlock(employee) + "\n" +
		"- Course Completion History: " + jsonBlock(completions) + "\n" +
		"- Performance Ratings (Assessment Scores): " + jsonBlock(performance) + "\n\n" +
		"Based on this data, perform the following actions:\n" +
		"1. Correlate the employee's initial scores, the courses they completed, and their assessment performance to find patterns.\n" +
		"2. Infer latent skills. For example, if a user has high scores in 'Python' and 'SQL Testing' courses, infer a latent skill like 'Data Analysis'.\n" +
		"3. Produce the final employee skill vectors and history logs.\n\n" +
		"Format your response as a single, clean JSON object with two keys:\n" +
		"- \"skill_vectors\": an array of objects, each with \"skill\" and \"level\" (one of 'Novice', 'Intermediate', 'Advanced') keys.\n" +
		"- \"history_logs\": an array of strings summarizing key milestones or observations."
}

func buildTrackerPrompt(courseHistory []repos.CourseHistoryRow, assessmentHistory []repos.AttemptHistoryRow) string {
	return "You are an AI Learning Tracker Agent. Your task is to analyze an employee's learning data and provide a concise, analytical summary.\n\n" +
		"Here is the employee's data:\n" +
		"- Course History: " + jsonBlock(courseHistory) + "\n" +
		"- Assessment (Quiz) History: " + jsonBlock(assessmentHistory) + "\n\n" +
		"Based on this data, please perform the following analysis:\n" +
		"1. Overall Progress Summary: briefly summarize the employee's overall engagement and progress.\n" +
		"2. Completion Patterns: are they finishing courses they start? Is their progress consistent?\n" +
		"3. Assessment Performance: are there multiple attempts on the same course? Any patterns of plateauing, such as repeatedly failing the same assessment?\n" +
		"4. Actionable Insight: one clear, encouraging insight or recommendation.\n\n" +
		"Format your response as a simple JSON object with two keys: \"summary\" (a one-sentence headline) and \"details\" (a single string containing your full analysis with markdown for bolding and bullet points)."
}

func buildSlideContentPrompt(courseName string, slideNumber, totalSlides int) string {
	return fmt.Sprintf("You are an AI Instructional Designer. Generate content for slide %d/%d of the course %q. Return a JSON object with \"title\", \"image_url\" (using placehold.co), \"concept\", and \"example\".", slideNumber, totalSlides, courseName)
}

func buildQuizPrompt(courseName string) string {
	return fmt.Sprintf("You are an AI Quiz Generator. Create a 5-question multiple-choice quiz for the course %q. For each question, provide 4 options. Return ONLY a valid JSON array of objects. Each object must have: \"question\", \"options\", and \"correctAnswerIndex\" (zero-based).", courseName)
}

func buildCareerReportPrompt(employeeName, roleName string, skills map[string]int) string {
	return "You are an expert AI Career Development Analyst. Provide a concise, actionable upskilling roadmap.\n" +
		"Employee Name: " + employeeName + "\n" +
		"Role: " + roleName + "\n" +
		"Full Skill Profile (Score out of 100): " + jsonBlock(skills) + "\n" +
		"Generate a report with markdown sections for: **Overall Summary**, **Key Strengths**, **Recommended Upskilling Roadmap**, and **Concluding Remark**."
}
