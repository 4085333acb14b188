package extract

import "fmt"

const systemPrompt = "You are an expert CV parser that extracts structured data from resumes. Always return valid JSON."

const promptTemplate = `Extract comprehensive information from this CV and return as JSON.

CRITICAL INSTRUCTIONS:
1. CRITICAL - Extract the candidate's FULL NAME from the CV:
   - The name is usually at the very top of the CV, often in large or bold text
   - This is the PERSON'S NAME (e.g., "Jane DOE", "John Smith", "Maria Garcia")
   - This is NOT their job title (e.g., "Quality Systems Manager", "Senior Engineer")
   - If you cannot find a name, look for:
     * Text near the top that looks like a personal name
     * Name before contact information (phone/email)
     * Name in header section
   - If truly no name is found, use "Candidate Name Not Provided"
   - DO NOT use job titles, positions, or company names as the candidate name
2. Extract ALL experiences (up to 20, most recent first)
3. IMPORTANT: Each role is a SEPARATE experience, even if at the same company:
   - If someone had "Manager Role A" (2023-2025) and "Specialist Role B" (2021-2023) at Company X, create TWO separate experience entries
   - Do NOT consolidate multiple roles at the same company into one entry
   - Each role should have its own company, location, role, duration, and responsibilities listed separately
4. For each experience, you MUST include:
   - Company name: Just the company name, no location appended
   - Location: Separate field for city, state, and/or country (e.g., "New York, NY")
     * If location is split across lines, combine the pieces (e.g., "Dubai, UAE")
   - Job title/role (in proper case, not ALL CAPS)
   - Duration: Use the date format provided (e.g., "MAY 2025 - Present" or "OCT 2021 - JAN 2025")
   - Responsibilities:
     * Extract EVERY responsibility mentioned
     * If there's an "Environment:" or "Technologies:" section, add it as the LAST entry
     * Do NOT add bullet points - they will be added by the template
5. Extract ALL technical skills comprehensively
6. Extract ALL certifications with their FULL names and IDs if mentioned
7. If no professional summary exists, create one based on the CV content
8. For candidate name and position, use proper case (e.g., "Jane Doe" not "JANE DOE")
9. For education, extract as structured data:
   - Institution: University/college name only
   - Duration: Years if mentioned, empty if not available
   - Degree: Full degree with major (e.g., "Bachelor of Science: Marine Concentration")
   - List PhD/MD first, then graduate degrees, then undergraduate
10. For certifications, extract as structured data:
    - Name: Full certificate name
    - Year: Year obtained (YYYY format)
    - Provider: Issuing organization/institution
    - Location: City, State if mentioned, empty if not available

Return this exact JSON structure:
{
  "candidate_name": "Full name in proper case (THE PERSON'S NAME, not their job title)",
  "position": "Current or most recent job title in proper case",
  "education": [
    {
      "institution": "University name only",
      "duration": "MMM YYYY to MMM YYYY (if available, otherwise empty string)",
      "degree": "Degree type: Major/Concentration"
    }
  ],
  "total_experience_years": "Number only (e.g., 11)",
  "phone": "Phone number with country code if present",
  "email": "Email address",
  "intro_paragraph": "Professional summary in paragraph form, worded in a structured manner",
  "experiences": [
    {
      "company": "Company name only (no location here)",
      "location": "City, State or City, Country (separate from company)",
      "role": "Job title in proper case",
      "duration": "MMM YYYY - MMM YYYY (or Present)",
      "responsibilities": [
        "First responsibility",
        "Second responsibility",
        "All other responsibilities"
      ]
    }
  ],
  "technical_skills": ["List ALL technical skills mentioned"],
  "certifications": [
    {
      "name": "Certificate name",
      "year": "YYYY",
      "provider": "Issuing organization",
      "location": "City, State (if available, otherwise empty string)"
    }
  ],
  "language_skills": ["Language - Proficiency level"]
}

CV TEXT:
%s

RETURN ONLY THE JSON:`

func buildPrompt(cvText string) string {
	return fmt.Sprintf(promptTemplate, cvText)
}
