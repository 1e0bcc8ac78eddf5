package taxonomy

// subcategories is the full second-level table, grouped by parent category.
// Within each group the first entry doubles as the parent's default.
var subcategories = []Subcategory{
	// Software Development
	{
		ID:          "ai-ml-development",
		Name:        "AI & ML Development",
		Description: "Machine learning models, AI algorithms, data science",
		Parent:      SoftwareDev,
		Icon:        "🤖",
		Keywords:    []string{"ai", "machine learning", "neural network", "tensorflow", "pytorch"},
	},
	{
		ID:          "web-development",
		Name:        "Web Development",
		Description: "Frontend, backend, full-stack web applications",
		Parent:      SoftwareDev,
		Icon:        "🌐",
		Keywords:    []string{"react", "javascript", "html", "css", "nodejs", "web app"},
	},
	{
		ID:          "mobile-development",
		Name:        "Mobile Development",
		Description: "iOS, Android, React Native, Flutter apps",
		Parent:      SoftwareDev,
		Icon:        "📱",
		Keywords:    []string{"ios", "android", "react native", "flutter", "mobile app"},
	},
	{
		ID:          "database-backend",
		Name:        "Database & Backend",
		Description: "Database design, API development, server architecture",
		Parent:      SoftwareDev,
		Icon:        "🗄️",
		Keywords:    []string{"database", "api", "backend", "sql", "nosql", "server"},
	},
	{
		ID:          "devops-infrastructure",
		Name:        "DevOps & Infrastructure",
		Description: "CI/CD, cloud services, containerization, deployment",
		Parent:      SoftwareDev,
		Icon:        "⚙️",
		Keywords:    []string{"devops", "docker", "kubernetes", "aws", "ci/cd", "deployment"},
	},
	{
		ID:          "testing-quality",
		Name:        "Testing & Quality",
		Description: "Unit tests, integration tests, QA processes",
		Parent:      SoftwareDev,
		Icon:        "🧪",
		Keywords:    []string{"testing", "qa", "unit test", "integration", "quality assurance"},
	},
	{
		ID:          "docs-architecture",
		Name:        "Documentation & Architecture",
		Description: "Technical docs, system design, architecture planning",
		Parent:      SoftwareDev,
		Icon:        "📚",
		Keywords:    []string{"documentation", "architecture", "system design", "tech docs"},
	},

	// Content Writing
	{
		ID:          "blog-articles",
		Name:        "Blog Posts & Articles",
		Description: "Blog content, online articles, web copy",
		Parent:      ContentWriting,
		Icon:        "📝",
		Keywords:    []string{"blog", "article", "web content", "online writing"},
	},
	{
		ID:          "creative-fiction",
		Name:        "Creative & Fiction",
		Description: "Stories, novels, creative writing, fiction",
		Parent:      ContentWriting,
		Icon:        "✨",
		Keywords:    []string{"story", "fiction", "creative writing", "novel", "narrative"},
	},
	{
		ID:          "journalism-news",
		Name:        "Journalism & News",
		Description: "News articles, interviews, investigative pieces",
		Parent:      ContentWriting,
		Icon:        "📰",
		Keywords:    []string{"news", "journalism", "interview", "investigative", "reporter"},
	},
	{
		ID:          "technical-writing",
		Name:        "Technical Writing",
		Description: "Technical documentation, how-to guides, manuals",
		Parent:      ContentWriting,
		Icon:        "⚡",
		Keywords:    []string{"technical writing", "documentation", "manual", "how-to"},
	},
	{
		ID:          "copywriting",
		Name:        "Copywriting",
		Description: "Sales copy, marketing copy, persuasive writing",
		Parent:      ContentWriting,
		Icon:        "💰",
		Keywords:    []string{"copywriting", "sales copy", "marketing copy", "persuasive"},
	},
	{
		ID:          "scripts-screenplays",
		Name:        "Scripts & Screenplays",
		Description: "Video scripts, screenplays, dialogue writing",
		Parent:      ContentWriting,
		Icon:        "🎬",
		Keywords:    []string{"script", "screenplay", "dialogue", "video script"},
	},

	// Marketing & Advertising
	{
		ID:          "social-media",
		Name:        "Social Media Marketing",
		Description: "Social posts, engagement strategies, platform-specific content",
		Parent:      Marketing,
		Icon:        "📱",
		Keywords:    []string{"social media", "facebook", "instagram", "twitter", "linkedin"},
	},
	{
		ID:          "email-marketing",
		Name:        "Email Marketing",
		Description: "Email campaigns, newsletters, drip sequences",
		Parent:      Marketing,
		Icon:        "📧",
		Keywords:    []string{"email marketing", "newsletter", "email campaign", "drip sequence"},
	},
	{
		ID:          "content-marketing",
		Name:        "Content Marketing",
		Description: "Content strategy, editorial calendars, content planning",
		Parent:      Marketing,
		Icon:        "📈",
		Keywords:    []string{"content marketing", "content strategy", "editorial calendar"},
	},
	{
		ID:          "paid-advertising",
		Name:        "Paid Advertising",
		Description: "PPC campaigns, ad copy, display ads, sponsored content",
		Parent:      Marketing,
		Icon:        "💸",
		Keywords:    []string{"ppc", "paid ads", "ad copy", "google ads", "facebook ads"},
	},
	{
		ID:          "brand-strategy",
		Name:        "Brand Strategy",
		Description: "Brand positioning, messaging, identity development",
		Parent:      Marketing,
		Icon:        "🎯",
		Keywords:    []string{"branding", "brand strategy", "positioning", "messaging"},
	},
	{
		ID:          "growth-analytics",
		Name:        "Growth & Analytics",
		Description: "Growth hacking, marketing analytics, performance tracking",
		Parent:      Marketing,
		Icon:        "📊",
		Keywords:    []string{"growth hacking", "analytics", "marketing metrics", "conversion"},
	},
	{
		ID:          "influencer-marketing",
		Name:        "Influencer Marketing",
		Description: "Influencer partnerships, creator content, collaborations",
		Parent:      Marketing,
		Icon:        "⭐",
		Keywords:    []string{"influencer", "creator", "partnership", "collaboration"},
	},

	// SEO & Research
	{
		ID:          "keyword-research",
		Name:        "Keyword Research",
		Description: "Keyword analysis, search intent, competition research",
		Parent:      SEOResearch,
		Icon:        "🔍",
		Keywords:    []string{"keyword research", "search intent", "keyword analysis"},
	},
	{
		ID:          "on-page-seo",
		Name:        "On-Page SEO",
		Description: "Content optimization, meta tags, internal linking",
		Parent:      SEOResearch,
		Icon:        "📄",
		Keywords:    []string{"on-page seo", "meta tags", "content optimization", "internal linking"},
	},
	{
		ID:          "link-building",
		Name:        "Link Building",
		Description: "Backlink strategies, outreach, link acquisition",
		Parent:      SEOResearch,
		Icon:        "🔗",
		Keywords:    []string{"link building", "backlinks", "outreach", "link acquisition"},
	},
	{
		ID:          "technical-seo",
		Name:        "Technical SEO",
		Description: "Site speed, crawling, indexing, technical optimization",
		Parent:      SEOResearch,
		Icon:        "⚙️",
		Keywords:    []string{"technical seo", "site speed", "crawling", "indexing"},
	},
	{
		ID:          "competitive-analysis",
		Name:        "Competitive Analysis",
		Description: "Competitor research, market analysis, SWOT analysis",
		Parent:      SEOResearch,
		Icon:        "🎯",
		Keywords:    []string{"competitor analysis", "market research", "competitive intelligence"},
	},

	// Business Communication
	{
		ID:          "professional-emails",
		Name:        "Professional Emails",
		Description: "Business emails, client communication, formal correspondence",
		Parent:      BusinessComm,
		Icon:        "📧",
		Keywords:    []string{"professional email", "business communication", "formal email"},
	},
	{
		ID:          "presentations",
		Name:        "Presentations",
		Description: "Slide decks, pitch presentations, speaking engagements",
		Parent:      BusinessComm,
		Icon:        "📊",
		Keywords:    []string{"presentation", "slide deck", "pitch deck", "speaking"},
	},
	{
		ID:          "reports-docs",
		Name:        "Reports & Documents",
		Description: "Business reports, white papers, formal documents",
		Parent:      BusinessComm,
		Icon:        "📄",
		Keywords:    []string{"business report", "white paper", "formal document", "analysis"},
	},
	{
		ID:          "proposals-contracts",
		Name:        "Proposals & Contracts",
		Description: "Project proposals, contracts, agreements, RFPs",
		Parent:      BusinessComm,
		Icon:        "📋",
		Keywords:    []string{"proposal", "contract", "agreement", "rfp", "project proposal"},
	},
	{
		ID:          "meeting-materials",
		Name:        "Meeting Materials",
		Description: "Agendas, meeting notes, action items, summaries",
		Parent:      BusinessComm,
		Icon:        "🤝",
		Keywords:    []string{"meeting agenda", "meeting notes", "action items", "meeting summary"},
	},
	{
		ID:          "client-communication",
		Name:        "Client Communication",
		Description: "Client updates, status reports, relationship management",
		Parent:      BusinessComm,
		Icon:        "👥",
		Keywords:    []string{"client communication", "client update", "status report"},
	},

	// Education & Learning
	{
		ID:          "course-content",
		Name:        "Course Content",
		Description: "Online courses, curriculum design, educational modules",
		Parent:      Education,
		Icon:        "🎓",
		Keywords:    []string{"course content", "curriculum", "online course", "educational module"},
	},
	{
		ID:          "tutorials",
		Name:        "Tutorials & How-To",
		Description: "Step-by-step guides, instructional content, walkthroughs",
		Parent:      Education,
		Icon:        "📚",
		Keywords:    []string{"tutorial", "how-to guide", "step-by-step", "instructional"},
	},
	{
		ID:          "educational-videos",
		Name:        "Educational Videos",
		Description: "Video scripts, educational content, learning videos",
		Parent:      Education,
		Icon:        "🎥",
		Keywords:    []string{"educational video", "video script", "learning video", "explainer"},
	},
	{
		ID:          "study-guides",
		Name:        "Study Guides",
		Description: "Study materials, exam prep, reference guides",
		Parent:      Education,
		Icon:        "📖",
		Keywords:    []string{"study guide", "exam prep", "study materials", "reference guide"},
	},
	{
		ID:          "lesson-plans",
		Name:        "Lesson Plans",
		Description: "Teaching plans, classroom activities, educational objectives",
		Parent:      Education,
		Icon:        "📝",
		Keywords:    []string{"lesson plan", "teaching plan", "classroom activity", "education"},
	},
	{
		ID:          "assessments",
		Name:        "Assessments & Quizzes",
		Description: "Tests, quizzes, evaluation methods, rubrics",
		Parent:      Education,
		Icon:        "✅",
		Keywords:    []string{"assessment", "quiz", "test", "evaluation", "rubric"},
	},

	// Creative & Design
	{
		ID:          "ui-ux-design",
		Name:        "UI/UX Design",
		Description: "User interface design, user experience, wireframes",
		Parent:      CreativeDesign,
		Icon:        "🎨",
		Keywords:    []string{"ui design", "ux design", "wireframe", "user interface"},
	},
	{
		ID:          "graphic-design",
		Name:        "Graphic Design",
		Description: "Visual design, graphics, print design, digital art",
		Parent:      CreativeDesign,
		Icon:        "🎭",
		Keywords:    []string{"graphic design", "visual design", "print design", "digital art"},
	},
	{
		ID:          "branding-identity",
		Name:        "Branding & Identity",
		Description: "Brand identity, logo design, visual branding",
		Parent:      CreativeDesign,
		Icon:        "🏷️",
		Keywords:    []string{"branding", "brand identity", "logo design", "visual identity"},
	},
	{
		ID:          "web-design",
		Name:        "Web Design",
		Description: "Website design, landing pages, web layouts",
		Parent:      CreativeDesign,
		Icon:        "🌐",
		Keywords:    []string{"web design", "website design", "landing page", "web layout"},
	},
	{
		ID:          "visual-concepts",
		Name:        "Visual Concepts",
		Description: "Creative concepts, visual storytelling, artistic direction",
		Parent:      CreativeDesign,
		Icon:        "💡",
		Keywords:    []string{"visual concept", "creative concept", "visual storytelling"},
	},
	{
		ID:          "illustration-art",
		Name:        "Illustration & Art",
		Description: "Digital illustration, artwork, creative visuals",
		Parent:      CreativeDesign,
		Icon:        "🖌️",
		Keywords:    []string{"illustration", "digital art", "artwork", "creative visual"},
	},
	{
		ID:          "motion-design",
		Name:        "Motion Design",
		Description: "Animation, motion graphics, video design",
		Parent:      CreativeDesign,
		Icon:        "🎬",
		Keywords:    []string{"motion design", "animation", "motion graphics", "video design"},
	},

	// Data & Analytics
	{
		ID:          "data-analysis",
		Name:        "Data Analysis",
		Description: "Data interpretation, statistical analysis, insights",
		Parent:      DataAnalytics,
		Icon:        "📊",
		Keywords:    []string{"data analysis", "statistical analysis", "data interpretation"},
	},
	{
		ID:          "data-visualization",
		Name:        "Data Visualization",
		Description: "Charts, graphs, dashboards, visual data representation",
		Parent:      DataAnalytics,
		Icon:        "📈",
		Keywords:    []string{"data visualization", "charts", "graphs", "dashboard", "data viz"},
	},
	{
		ID:          "statistical-analysis",
		Name:        "Statistical Analysis",
		Description: "Statistical methods, hypothesis testing, data modeling",
		Parent:      DataAnalytics,
		Icon:        "📉",
		Keywords:    []string{"statistics", "statistical analysis", "hypothesis testing"},
	},
	{
		ID:          "business-intelligence",
		Name:        "Business Intelligence",
		Description: "BI tools, business metrics, performance analysis",
		Parent:      DataAnalytics,
		Icon:        "💼",
		Keywords:    []string{"business intelligence", "bi tools", "business metrics", "kpi"},
	},
	{
		ID:          "data-science-ml",
		Name:        "Data Science & ML",
		Description: "Machine learning, predictive analytics, data modeling",
		Parent:      DataAnalytics,
		Icon:        "🔬",
		Keywords:    []string{"data science", "machine learning", "predictive analytics"},
	},
	{
		ID:          "reporting-dashboards",
		Name:        "Reporting & Dashboards",
		Description: "Reports, dashboards, data presentation, metrics",
		Parent:      DataAnalytics,
		Icon:        "📋",
		Keywords:    []string{"reporting", "dashboard", "data presentation", "metrics"},
	},

	// Productivity & Planning
	{
		ID:          "task-management",
		Name:        "Task Management",
		Description: "To-do lists, task organization, productivity systems",
		Parent:      Productivity,
		Icon:        "✅",
		Keywords:    []string{"task management", "to-do list", "productivity system", "gtd"},
	},
	{
		ID:          "project-planning",
		Name:        "Project Planning",
		Description: "Project management, timelines, resource planning",
		Parent:      Productivity,
		Icon:        "📅",
		Keywords:    []string{"project planning", "project management", "timeline", "gantt"},
	},
	{
		ID:          "goals-okrs",
		Name:        "Goals & OKRs",
		Description: "Goal setting, OKRs, strategic planning, objectives",
		Parent:      Productivity,
		Icon:        "🎯",
		Keywords:    []string{"goals", "okr", "objectives", "strategic planning", "goal setting"},
	},
	{
		ID:          "brainstorming",
		Name:        "Brainstorming",
		Description: "Idea generation, creative thinking, innovation sessions",
		Parent:      Productivity,
		Icon:        "💡",
		Keywords:    []string{"brainstorming", "idea generation", "creative thinking", "innovation"},
	},
	{
		ID:          "time-management",
		Name:        "Time Management",
		Description: "Scheduling, calendar management, time optimization",
		Parent:      Productivity,
		Icon:        "⏰",
		Keywords:    []string{"time management", "scheduling", "calendar", "time blocking"},
	},
	{
		ID:          "workflow-optimization",
		Name:        "Workflow Optimization",
		Description: "Process improvement, automation, efficiency",
		Parent:      Productivity,
		Icon:        "⚙️",
		Keywords:    []string{"workflow", "process improvement", "automation", "efficiency"},
	},

	// General & Other
	{
		ID:          "miscellaneous",
		Name:        "Miscellaneous",
		Description: "Various topics that don't fit other categories",
		Parent:      General,
		Icon:        "🔀",
		Keywords:    []string{"miscellaneous", "various", "mixed", "other"},
	},
	{
		ID:          "multi-category",
		Name:        "Multi-Category",
		Description: "Prompts spanning multiple categories or disciplines",
		Parent:      General,
		Icon:        "🔄",
		Keywords:    []string{"multi-category", "cross-functional", "interdisciplinary"},
	},
	{
		ID:          "conversational",
		Name:        "Conversational",
		Description: "Chat-based interactions, dialogue, conversation starters",
		Parent:      General,
		Icon:        "💬",
		Keywords:    []string{"conversation", "chat", "dialogue", "conversational ai"},
	},
	{
		ID:          "exploratory",
		Name:        "Exploratory",
		Description: "Research, discovery, open-ended exploration",
		Parent:      General,
		Icon:        "🔍",
		Keywords:    []string{"exploratory", "research", "discovery", "open-ended"},
	},
	{
		ID:          Uncategorized,
		Name:        "Uncategorized",
		Description: "Prompts that haven't been classified yet",
		Parent:      General,
		Icon:        "❓",
		Keywords:    []string{"uncategorized", "unclassified", "unknown"},
	},
}
