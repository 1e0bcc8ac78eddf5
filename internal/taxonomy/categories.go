package taxonomy

// categories is the full top-level table. Keywords are used by both the AI
// classification prompt (as hints) and the keyword-scoring fallback.
var categories = []Category{
	{
		ID:          SoftwareDev,
		Name:        "Software Development",
		Description: "Code generation, debugging, architecture, technical documentation",
		Icon:        "Code2",
		Keywords: []string{
			"code", "programming", "debug", "function", "API", "database",
			"algorithm", "refactor", "bug", "test", "software", "development",
			"framework", "library", "git", "docker", "deployment", "backend",
			"frontend", "fullstack", "javascript", "python", "java", "react",
			"node", "typescript", "sql", "mongodb", "kubernetes", "CI/CD",
		},
	},
	{
		ID:          ContentWriting,
		Name:        "Content Writing",
		Description: "Blog posts, articles, creative writing, storytelling",
		Icon:        "PenTool",
		Keywords: []string{
			"write", "article", "blog", "story", "content", "creative",
			"narrative", "essay", "post", "author", "paragraph", "draft",
			"edit", "copy", "headline", "body", "fiction", "poetry",
			"journalism", "publication", "manuscript", "novel", "screenplay",
		},
	},
	{
		ID:          Marketing,
		Name:        "Marketing & Advertising",
		Description: "Campaign ideas, ad copy, social media, branding",
		Icon:        "TrendingUp",
		Keywords: []string{
			"marketing", "advertising", "campaign", "brand", "social media",
			"ad", "promotion", "audience", "customer", "engagement",
			"conversion", "viral", "influencer", "product launch", "CTR",
			"ROI", "funnel", "lead generation", "email marketing", "PPC",
			"Facebook", "Instagram", "LinkedIn", "Twitter", "TikTok",
		},
	},
	{
		ID:          SEOResearch,
		Name:        "SEO & Research",
		Description: "Keyword research, optimization, competitor analysis",
		Icon:        "Search",
		Keywords: []string{
			"SEO", "keyword", "search engine", "ranking", "optimization",
			"backlink", "meta", "title tag", "competitor analysis", "research",
			"Google", "traffic", "SERP", "domain authority", "analytics",
			"organic", "on-page", "off-page", "link building", "content strategy",
		},
	},
	{
		ID:          BusinessComm,
		Name:        "Business Communication",
		Description: "Emails, proposals, presentations, reports",
		Icon:        "Mail",
		Keywords: []string{
			"email", "business", "proposal", "presentation", "report",
			"memo", "meeting", "communication", "professional", "letter",
			"corporate", "executive", "stakeholder", "client", "B2B",
			"pitch", "RFP", "contract", "agreement", "minutes", "summary",
		},
	},
	{
		ID:          Education,
		Name:        "Education & Learning",
		Description: "Tutorials, explanations, lesson plans, teaching",
		Icon:        "GraduationCap",
		Keywords: []string{
			"education", "learning", "teach", "tutorial", "explain",
			"lesson", "study", "course", "training", "student",
			"instructor", "curriculum", "pedagogy", "quiz", "exam",
			"educational", "workshop", "seminar", "syllabus", "assessment",
		},
	},
	{
		ID:          CreativeDesign,
		Name:        "Creative & Design",
		Description: "UI/UX, graphic design, visual concepts, branding",
		Icon:        "Palette",
		Keywords: []string{
			"design", "creative", "visual", "UI", "UX", "interface",
			"graphic", "layout", "color", "typography", "logo",
			"brand identity", "mockup", "wireframe", "aesthetic", "artistic",
			"Figma", "Photoshop", "illustration", "icon", "prototype",
		},
	},
	{
		ID:          DataAnalytics,
		Name:        "Data & Analytics",
		Description: "Data analysis, visualization, statistical insights",
		Icon:        "BarChart3",
		Keywords: []string{
			"data", "analytics", "statistics", "analysis", "chart",
			"graph", "visualization", "metrics", "KPI", "dashboard",
			"insight", "trend", "forecast", "dataset", "SQL", "query",
			"reporting", "BI", "business intelligence", "data science",
			"machine learning", "pandas", "excel", "tableau", "power bi",
		},
	},
	{
		ID:          Productivity,
		Name:        "Productivity & Planning",
		Description: "Task organization, project planning, brainstorming",
		Icon:        "ListTodo",
		Keywords: []string{
			"productivity", "planning", "organize", "task", "project",
			"schedule", "agenda", "brainstorm", "strategy", "goal",
			"timeline", "workflow", "management", "prioritize", "roadmap",
			"kanban", "scrum", "agile", "sprint", "milestone", "OKR",
			"time management", "to-do", "checklist", "calendar",
		},
	},
	{
		ID:          General,
		Name:        "General & Other",
		Description: "Miscellaneous or multi-category prompts",
		Icon:        "HelpCircle",
		Keywords: []string{
			"general", "miscellaneous", "other", "various", "mixed",
			"multiple", "diverse", "uncategorized", "general purpose",
		},
	},
}
