// Package analysis generates a rule-based narrative report for a parsed
// resume. It is the deterministic fallback used whenever the AI collaborator
// is unavailable or returns nothing usable, and it needs no network access.
package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

var (
	unprofessionalEmailParts = []string{"sexy", "cute", "cool", "baby", "123", "69", "420"}

	techSkillKeywords = []string{
		"python", "java", "javascript", "sql", "react", "node", "c++", "c#",
		"aws", "docker", "kubernetes", "git", "html", "css", "api", "django",
		"flask", "angular", "vue", "typescript", "mongodb", "postgresql",
		"mysql", "redis", "kafka", "spark", "hadoop", "tensorflow", "pytorch",
		"scikit", "pandas", "numpy",
	}

	softSkillKeywords = []string{
		"leadership", "communication", "teamwork", "problem-solving",
		"analytical", "management", "collaboration", "presentation",
	}

	clearTitleKeywords = []string{
		"engineer", "developer", "manager", "analyst", "designer",
		"architect", "director", "lead", "senior",
	}

	actionVerbs = []string{
		"achieved", "improved", "increased", "reduced", "developed",
		"implemented", "designed", "led", "managed", "delivered", "created",
		"optimized", "streamlined", "launched", "spearheaded", "drove",
		"executed", "established", "built", "engineered",
	}

	industryKeywords = [][]string{
		{"agile", "scrum", "ci/cd", "api", "microservices", "cloud", "devops", "full-stack", "backend", "frontend"},
		{"roi", "kpi", "strategy", "stakeholder", "revenue", "growth", "market", "analysis"},
		{"leadership", "team", "budget", "project", "cross-functional", "strategic", "planning"},
	}

	firstPersonWords = []string{"i", "my", "me", "we", "our", "stuff", "things", "basically", "kinda", "sorta"}

	experienceSectionKeywords = []string{"experience", "employment", "work history", "professional experience", "career"}

	timelinePattern = regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\b|present|current`)
)

// Generate builds a comprehensive rule-based report from a parsed record.
// The output is deterministic for a given record.
func Generate(record *types.ParsedResumeRecord) *types.AnalysisReport {
	var strengths, weaknesses, recommendations []string
	addStrength := func(s string) { strengths = append(strengths, s) }
	addWeakness := func(s string) { weaknesses = append(weaknesses, s) }
	addRecommendation := func(s string) { recommendations = append(recommendations, s) }

	text := record.FullText
	textLower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))

	// Contact information.
	if record.Email != "" {
		if containsAny(strings.ToLower(record.Email), unprofessionalEmailParts) {
			addWeakness("Email address may appear unprofessional")
			addRecommendation("Consider using a professional email format: firstname.lastname@domain.com")
		} else {
			addStrength("Professional email address is clearly visible for recruiter contact")
		}
	} else {
		addWeakness("Email address is missing or not detectable - critical contact information")
		addRecommendation("Add a professional email address at the top: firstname.lastname@gmail.com")
	}
	if record.Phone != "" {
		addStrength("Phone number provided for direct communication")
	} else {
		addWeakness("Phone number not found - missing important contact method")
		addRecommendation("Include a phone number with area code for easy callback")
	}

	// Skills depth.
	skillsCount := len(record.Skills)
	techCount := 0
	for _, skill := range record.Skills {
		if containsAny(strings.ToLower(skill), techSkillKeywords) {
			techCount++
		}
	}
	switch {
	case skillsCount >= 8:
		addStrength(fmt.Sprintf("Comprehensive skills section with %d identified skills demonstrating versatility", skillsCount))
		if techCount >= 5 {
			addStrength(fmt.Sprintf("Strong technical skill set with %d modern technologies", techCount))
		}
	case skillsCount >= 5:
		addStrength(fmt.Sprintf("Adequate skills listed (%d skills)", skillsCount))
		if techCount < 3 {
			addRecommendation("Add more in-demand technical skills relevant to your target role (e.g., cloud platforms, modern frameworks)")
		}
	case skillsCount > 0:
		addWeakness(fmt.Sprintf("Limited skills section with only %d skills - appears thin", skillsCount))
		addRecommendation("Expand skills section to 8-12 items including technical skills, soft skills, and certifications")
	default:
		addWeakness("No skills section detected - major gap in resume")
		addRecommendation("Create a prominent skills section listing technical proficiencies, tools, and competencies")
	}
	if !containsAny(textLower, softSkillKeywords) {
		addRecommendation("Include soft skills like Leadership, Communication, and Problem-Solving to show well-rounded capabilities")
	}

	// Content length.
	switch {
	case wordCount >= 400 && wordCount <= 600:
		addStrength(fmt.Sprintf("Optimal resume length (%d words) - concise yet comprehensive", wordCount))
	case wordCount >= 300:
		addWeakness(fmt.Sprintf("Resume is somewhat brief (%d words) - may lack sufficient detail", wordCount))
		addRecommendation("Expand bullet points with more context about responsibilities, technologies used, and impact created")
	case wordCount < 300:
		addWeakness(fmt.Sprintf("Resume is too short (%d words) - appears incomplete or lacking detail", wordCount))
		addRecommendation("Add 2-3 bullet points per role describing key achievements, technologies, and quantifiable results")
	}
	if wordCount > 600 && wordCount <= 900 {
		addStrength("Resume has substantial content describing experience")
		addRecommendation("Consider condensing to most impactful points to keep recruiter attention")
	} else if wordCount > 900 {
		addWeakness(fmt.Sprintf("Resume may be too lengthy (%d words) - risk of losing reader attention", wordCount))
		addRecommendation("Streamline content to 1-2 pages, focusing on most recent and relevant experiences")
	}

	analyzeWorkExperience(record, textLower, addStrength, addWeakness, addRecommendation)

	// Other sections.
	hasEducation := containsAny(textLower, []string{"education", "degree", "university", "college", "bachelor", "master", "phd", "diploma"})
	if hasEducation {
		if len(record.Education) >= 1 {
			addStrength("Educational background clearly presented with degree information")
		} else {
			addStrength("Education section is present in resume")
		}
	} else {
		addWeakness("Education section not found - missing important qualification information")
		addRecommendation("Include EDUCATION section: Degree | Institution | Graduation Year | GPA (if 3.5+)")
	}

	if containsAny(textLower, []string{"project", "portfolio", "built", "developed", "created"}) {
		if strings.Count(textLower, "project") >= 3 {
			addStrength("Multiple projects showcased - demonstrates hands-on experience and initiative")
		} else {
			addStrength("Projects or portfolio work mentioned - demonstrates practical application")
		}
	} else if containsAny(textLower, []string{"engineer", "developer", "designer"}) {
		addRecommendation("Add PROJECTS section with 2-4 projects: brief description, technologies used, outcomes/impact")
	}

	if containsAny(textLower, []string{"certification", "certified", "certificate", "credential"}) {
		addStrength("Professional certifications included - adds credibility and shows continuous learning")
	} else {
		addRecommendation("Consider adding CERTIFICATIONS section (AWS, Azure, PMP, Scrum, Google Analytics, etc.)")
	}

	// Achievement and impact.
	verbCount := 0
	for _, verb := range actionVerbs {
		if strings.Contains(textLower, verb) {
			verbCount++
		}
	}
	switch {
	case verbCount >= 5:
		addStrength(fmt.Sprintf("Strong use of action verbs (%d found) - demonstrates proactive contributions", verbCount))
	case verbCount >= 3:
		addStrength("Good use of action-oriented language")
	default:
		addWeakness("Limited use of strong action verbs - resume may appear passive")
		addRecommendation("Start bullet points with power verbs: Developed, Implemented, Achieved, Led, Optimized, Delivered")
	}

	digitCount := 0
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digitCount++
		}
	}
	if strings.Count(text, "%") >= 2 || digitCount >= 10 {
		addStrength("Quantifiable metrics and data points included - demonstrates measurable impact")
	} else {
		addWeakness("Lacks quantifiable achievements and metrics")
		addRecommendation("Add numbers and metrics: 'Increased efficiency by 40%', 'Managed team of 8', 'Reduced costs by $50K'")
	}

	// Keyword coverage across industries.
	keywordMatches := 0
	for _, group := range industryKeywords {
		for _, keyword := range group {
			if strings.Contains(textLower, keyword) {
				keywordMatches++
			}
		}
	}
	switch {
	case keywordMatches >= 5:
		addStrength("Good use of industry-relevant keywords - ATS-friendly and recruiter-optimized")
	case keywordMatches >= 3:
		addRecommendation("Include more industry keywords to improve ATS (Applicant Tracking System) compatibility")
	default:
		addWeakness("Few industry-specific keywords detected - may not pass ATS screening")
		addRecommendation("Research job descriptions and incorporate relevant keywords: cloud, agile, stakeholder, API, leadership")
	}

	// Formatting.
	if strings.ContainsAny(text, "•●◦-*") {
		addStrength("Bullet points used effectively for readability and scanning")
	} else {
		addWeakness("No bullet points detected - content may be hard to scan")
		addRecommendation("Use bullet points to break down responsibilities and achievements for better readability")
	}
	if timelinePattern.MatchString(text) {
		addStrength("Timeline and dates included - shows career progression")
	} else {
		addRecommendation("Add dates (MM/YYYY format) to all experiences and education entries")
	}

	// Professional polish.
	firstPersonCount := 0
	for _, word := range firstPersonWords {
		if strings.Contains(textLower, " "+word+" ") {
			firstPersonCount++
		}
	}
	if firstPersonCount > 3 {
		addWeakness("Excessive use of first-person pronouns or casual language")
		addRecommendation("Remove 'I', 'my', 'we' - use direct statements: 'Developed solutions' not 'I developed solutions'")
	} else if firstPersonCount == 0 {
		addStrength("Professional third-person writing style maintained throughout")
	}

	estimatedPages := float64(wordCount) / 400
	if estimatedPages > 2.5 {
		addWeakness(fmt.Sprintf("Resume likely exceeds 2 pages (approximately %.1f pages)", estimatedPages))
		addRecommendation("Trim to 1-2 pages by removing older or less relevant experiences")
	}

	// Missing elements.
	if !strings.Contains(textLower, "linkedin") && !strings.Contains(textLower, "github") {
		addRecommendation("Add LinkedIn profile URL and GitHub/portfolio links to increase credibility and showcase work")
	}
	if !strings.Contains(textLower, "summary") && !strings.Contains(textLower, "objective") {
		addRecommendation("Consider adding a 3-4 line professional summary at the top highlighting key strengths and career goals")
	}

	// Never return an empty section.
	if len(strengths) == 0 {
		strengths = append(strengths, "Resume structure has been successfully parsed and core information extracted")
	}
	if len(weaknesses) == 0 {
		weaknesses = append(weaknesses, "Continue refining content to stay current with industry trends")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Maintain resume updates quarterly with new skills, achievements, and experiences")
	}

	return &types.AnalysisReport{
		Summary:         buildSummary(len(strengths), len(weaknesses), len(recommendations), skillsCount, verbCount, keywordMatches, wordCount),
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Recommendations: recommendations,
	}
}

// analyzeWorkExperience contributes the work-history findings.
func analyzeWorkExperience(record *types.ParsedResumeRecord, textLower string, addStrength, addWeakness, addRecommendation func(string)) {
	entries := record.WorkExperience
	hasExperienceSection := containsAny(textLower, experienceSectionKeywords)

	if len(entries) == 0 {
		if hasExperienceSection {
			addStrength("Work experience section is present in resume")
			addWeakness("Work experience details are not clearly structured - difficult to parse roles and timeline")
			addRecommendation("Format experience as: Job Title | Company Name | Dates, followed by bullet points")
		} else {
			addWeakness("Experience/Work history section missing or not detectable - this is CRITICAL content")
			addRecommendation("Add a prominent 'PROFESSIONAL EXPERIENCE' section with company names, job titles, dates, and 4-6 bullet points per role")
			addRecommendation("Use this format: [Job Title] at [Company] | [Start Date] - [End Date]")
		}
		return
	}

	numRoles := len(entries)
	switch {
	case numRoles >= 3:
		addStrength(fmt.Sprintf("Strong work history with %d distinct roles showing career progression", numRoles))
	case numRoles >= 2:
		addStrength(fmt.Sprintf("Work experience section includes %d professional roles", numRoles))
	default:
		addStrength("Work experience is present and structured")
		addRecommendation("If you have more roles, include them to show broader experience (aim for 2-4 recent positions)")
	}

	datedRoles := 0
	totalDuration := 0
	totalBullets := 0
	clearTitles := 0
	for _, entry := range entries {
		if entry.DateRange != nil {
			datedRoles++
		}
		if entry.DurationYears != nil {
			totalDuration += *entry.DurationYears
		}
		totalBullets += entry.BulletPoints
		if containsAny(strings.ToLower(entry.TitleLine), clearTitleKeywords) {
			clearTitles++
		}
	}

	switch {
	case float64(datedRoles) >= float64(numRoles)*0.8:
		addStrength("Employment dates clearly specified for all roles - shows timeline and tenure")
	case datedRoles > 0:
		addWeakness("Some work experiences missing date ranges")
		addRecommendation("Add dates (MM/YYYY - MM/YYYY or Present) to all work experiences for clarity")
	default:
		addWeakness("Work experience lacks date information - dates are critical for recruiters")
		addRecommendation("Add employment dates in format: 'June 2022 - Present' or '01/2022 - 12/2023'")
	}

	if totalDuration >= 5 {
		addStrength(fmt.Sprintf("Substantial work experience totaling approximately %d+ years in the field", totalDuration))
	} else if totalDuration >= 2 {
		addStrength(fmt.Sprintf("Relevant work experience spanning %d+ years", totalDuration))
	}

	avgBullets := float64(totalBullets) / float64(numRoles)
	switch {
	case avgBullets >= 4:
		addStrength("Each role has detailed bullet points (4+) describing responsibilities and achievements")
	case avgBullets >= 2:
		addRecommendation("Expand bullet points to 4-6 per role with specific accomplishments and technologies used")
	default:
		addWeakness("Work experience entries lack sufficient detail and bullet points")
		addRecommendation("Add 4-6 bullet points per role: responsibilities, achievements, metrics, technologies, impact")
	}

	if clearTitles >= numRoles {
		addStrength("Job titles clearly stated for all positions - easy to understand your roles")
	} else if float64(clearTitles) < float64(numRoles)*0.5 {
		addWeakness("Some job titles unclear or missing - makes it hard to understand your roles")
		addRecommendation("Ensure each role has a clear job title: 'Senior Software Engineer', 'Product Manager', etc.")
	}
}

func buildSummary(strengthCount, weaknessCount, recommendationCount, skillsCount, verbCount, keywordMatches, wordCount int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Comprehensive resume analysis completed. Identified %d key strengths and %d areas requiring attention. ", strengthCount, weaknessCount))
	if skillsCount > 0 {
		sb.WriteString(fmt.Sprintf("Detected %d skills across various domains. ", skillsCount))
	}
	if verbCount >= 5 {
		sb.WriteString("Strong achievement-oriented language observed. ")
	}
	if keywordMatches >= 5 {
		sb.WriteString("Good keyword optimization for ATS systems. ")
	}
	switch {
	case wordCount < 300:
		sb.WriteString("Resume requires substantial expansion with detailed experiences. ")
	case wordCount > 900:
		sb.WriteString("Consider condensing content for improved impact. ")
	default:
		sb.WriteString("Resume length is within acceptable range. ")
	}
	sb.WriteString(fmt.Sprintf("Review %d specific recommendations below to enhance your resume's competitiveness and increase interview callbacks.", recommendationCount))
	return sb.String()
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
