package catalog

import "github.com/studentperksph/perks-api/internal/domain/entity"

// benefits is the full directory, in display order. Mirrors the curated
// listing the product ships with; ids are stable and referenced by
// persisted favorites, so never reuse one.
var benefits = []entity.Benefit{
	{
		ID:            "1",
		Name:          "GitHub Student Pack",
		Provider:      "GitHub",
		Description:   "Access to GitHub Copilot, Codespaces, and the best dev tools.",
		Features:      []string{"Free GitHub Copilot", "JetBrains Pack", "$100 Azure Credits"},
		Category:      entity.CategoryAIML,
		Tags:          []string{"Coding", "AI", "Cloud"},
		Link:          "https://education.github.com/pack",
		StudentPrice:  "Free",
		OriginalPrice: "$200k+ Value",
		Popular:       true,
		BrandColor:    "#7c3aed",
		LogoURL:       "https://logo.clearbit.com/github.com",
		CoverImage:    "https://images.unsplash.com/photo-1618401471353-b74a5b643375?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "2",
		Name:          "Perplexity Pro",
		Provider:      "Perplexity",
		Description:   "An AI-powered answer engine with GPT-4 and Claude 3 support.",
		Features:      []string{"Pro Search", "Unlimited Copilot", "Select AI Models"},
		Category:      entity.CategoryAIML,
		Tags:          []string{"AI", "Research", "Search"},
		Link:          "https://www.perplexity.ai/",
		StudentPrice:  "Discounted",
		OriginalPrice: "$20/mo",
		Popular:       true,
		BrandColor:    "#22B8CD",
		LogoURL:       "https://logo.clearbit.com/perplexity.ai",
		CoverImage:    "https://images.unsplash.com/photo-1677442136019-21780ecad995?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "3",
		Name:          "Cursor Editor",
		Provider:      "Cursor",
		Description:   "The AI-first code editor built for pair programming with AI.",
		Features:      []string{"GPT-4 Integration", "Codebase Indexing", "Privacy Mode"},
		Category:      entity.CategoryAIML,
		Tags:          []string{"Coding", "AI", "IDE"},
		Link:          "https://cursor.sh/",
		StudentPrice:  "Free Pro",
		OriginalPrice: "$20/mo",
		Popular:       true,
		BrandColor:    "#000000",
		LogoURL:       "https://logo.clearbit.com/cursor.sh",
		CoverImage:    "https://images.unsplash.com/photo-1555066931-4365d14bab8c?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "4",
		Name:          "Wolfram Alpha",
		Provider:      "Wolfram",
		Description:   "Computational intelligence for math, science, and engineering.",
		Features:      []string{"Step-by-step solutions", "Data Visualization", "Expert Knowledge"},
		Category:      entity.CategoryAIML,
		Tags:          []string{"Math", "AI", "Science"},
		Link:          "https://www.wolframalpha.com/pro/pricing/students/",
		StudentPrice:  "$5/mo",
		OriginalPrice: "$9.50/mo",
		Popular:       false,
		BrandColor:    "#DD1100",
		LogoURL:       "https://logo.clearbit.com/wolframalpha.com",
		CoverImage:    "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "5",
		Name:          "Tabnine",
		Provider:      "Tabnine",
		Description:   "AI assistant for software developers. Code faster with whole-line completion.",
		Features:      []string{"Pro features free", "Private Code Models", "IDE Integration"},
		Category:      entity.CategoryAIML,
		Tags:          []string{"Coding", "AI"},
		Link:          "https://www.tabnine.com/students",
		StudentPrice:  "Free",
		OriginalPrice: "$12/mo",
		Popular:       false,
		BrandColor:    "#1A73E8",
		LogoURL:       "https://logo.clearbit.com/tabnine.com",
		CoverImage:    "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "34",
		Name:          "Tableau for Students",
		Provider:      "Salesforce",
		Description:   "Free 1-year license for Tableau Desktop and Tableau Prep. Master data visualization.",
		Features:      []string{"Tableau Desktop", "Tableau Prep", "Data Viz"},
		Category:      entity.CategoryAIML,
		Tags:          []string{"Data Science", "Analytics", "BI"},
		Link:          "https://www.tableau.com/academic/students",
		StudentPrice:  "Free (1yr)",
		OriginalPrice: "$70/mo",
		Popular:       true,
		BrandColor:    "#E97627",
		LogoURL:       "https://logo.clearbit.com/tableau.com",
		CoverImage:    "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "32",
		Name:          "Grab Student",
		Provider:      "Grab PH",
		Description:   "Get 20% off on GrabCar, GrabFood, and more. Application hidden in Help Center.",
		Features:      []string{"20% Off Rides", "Food Delivery Deals", "No Subscription Fee"},
		Category:      entity.CategoryLifestyle,
		Tags:          []string{"Transport", "Food", "Daily"},
		Link:          "https://help.grab.com/passenger/en-ph/360025588231-Grab-Student-Program",
		StudentPrice:  "20% OFF",
		OriginalPrice: "Regular",
		Popular:       true,
		BrandColor:    "#00B14F",
		LogoURL:       "https://logo.clearbit.com/grab.com",
		CoverImage:    "https://images.unsplash.com/photo-1494783367193-149034c05e8f?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "38",
		Name:          "Angkas Student",
		Provider:      "Angkas",
		Description:   "Get 20% off on motorcycle taxi rides. Must submit requirements via form.",
		Features:      []string{"20% Off Rides", "Metro Manila", "Daily Commute"},
		Category:      entity.CategoryLifestyle,
		Tags:          []string{"Transport", "Commute"},
		Link:          "https://angkas.com/",
		StudentPrice:  "20% OFF",
		OriginalPrice: "Regular",
		Popular:       true,
		BrandColor:    "#009AD7",
		LogoURL:       "https://logo.clearbit.com/angkas.com",
		CoverImage:    "https://images.unsplash.com/photo-1449965408869-eaa3f722e40d?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "6",
		Name:          "Spotify Premium",
		Provider:      "Spotify",
		Description:   "Ad-free music listening, offline playback, and curated playlists.",
		Features:      []string{"Ad-free listening", "Offline mode", "Group sessions"},
		Category:      entity.CategoryEntertainment,
		Tags:          []string{"Music", "Streaming"},
		Link:          "https://www.spotify.com/ph-en/student/",
		StudentPrice:  "₱75/mo",
		OriginalPrice: "₱149/mo",
		Popular:       true,
		BrandColor:    "#1DB954",
		LogoURL:       "https://logo.clearbit.com/spotify.com",
		CoverImage:    "https://images.unsplash.com/photo-1614680376593-902f74cf0d41?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "7",
		Name:          "Apple Music",
		Provider:      "Apple",
		Description:   "Stream over 100 million songs ad-free. Includes Apple TV+.",
		Features:      []string{"Lossless Audio", "Apple TV+ Included", "Dolby Atmos"},
		Category:      entity.CategoryEntertainment,
		Tags:          []string{"Music", "TV"},
		Link:          "https://www.apple.com/ph/apple-music-student/",
		StudentPrice:  "₱79/mo",
		OriginalPrice: "₱139/mo",
		Popular:       false,
		BrandColor:    "#FA243C",
		LogoURL:       "https://logo.clearbit.com/apple.com",
		CoverImage:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "8",
		Name:          "YouTube Premium",
		Provider:      "Google",
		Description:   "Ad-free YouTube and YouTube Music. Background play included.",
		Features:      []string{"No Ads", "Background Play", "YouTube Music"},
		Category:      entity.CategoryEntertainment,
		Tags:          []string{"Video", "Music"},
		Link:          "https://www.youtube.com/premium/student",
		StudentPrice:  "₱95/mo",
		OriginalPrice: "₱159/mo",
		Popular:       true,
		BrandColor:    "#FF0000",
		LogoURL:       "https://logo.clearbit.com/youtube.com",
		CoverImage:    "https://images.unsplash.com/photo-1543165796-5426273eaab3?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "9",
		Name:          "Amazon Prime",
		Provider:      "Amazon",
		Description:   "Fast shipping, Prime Video, and exclusive college deals.",
		Features:      []string{"Prime Video", "Free Shipping", "Exclusive Deals"},
		Category:      entity.CategoryEntertainment,
		Tags:          []string{"Shopping", "Video"},
		Link:          "https://www.amazon.com/prime/student",
		StudentPrice:  "Free (6mo)",
		OriginalPrice: "$7.49/mo",
		Popular:       false,
		BrandColor:    "#00A8E1",
		LogoURL:       "https://logo.clearbit.com/amazon.com",
		CoverImage:    "https://images.unsplash.com/photo-1523474253046-8cd2748b5fd2?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "10",
		Name:          "Apple Education Store",
		Provider:      "Apple",
		Description:   "Save on Mac and iPad. Plus get Apple Pencil or Gift Cards on promo.",
		Features:      []string{"MacBook Discounts", "iPad Discounts", "Pro Apps Bundle"},
		Category:      entity.CategoryHardware,
		Tags:          []string{"Laptop", "Tablet"},
		Link:          "https://www.apple.com/ph/shop/education/pricing",
		StudentPrice:  "Up to ₱10k Off",
		OriginalPrice: "MSRP",
		Popular:       true,
		BrandColor:    "#999999",
		LogoURL:       "https://logo.clearbit.com/apple.com",
		CoverImage:    "https://images.unsplash.com/photo-1517336714731-489689fd1ca4?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "11",
		Name:          "Samsung Education",
		Provider:      "Samsung",
		Description:   "Exclusive education store. Big discounts on Monitors and Galaxy devices.",
		Features:      []string{"50% Off Monitors", "30% Off Galaxy", "Freebies"},
		Category:      entity.CategoryHardware,
		Tags:          []string{"Phone", "Tech", "Monitor"},
		Link:          "https://www.samsung.com/ph/multistore/education/",
		StudentPrice:  "Up to 50% Off",
		OriginalPrice: "MSRP",
		Popular:       true,
		BrandColor:    "#1428A0",
		LogoURL:       "https://logo.clearbit.com/samsung.com",
		CoverImage:    "https://images.unsplash.com/photo-1610945415295-d9bbf067e59c?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "12",
		Name:          "Logitech",
		Provider:      "Logitech",
		Description:   "Discounts on mice, keyboards, and webcams for your study setup.",
		Features:      []string{"MX Series", "Keyboards", "Webcams"},
		Category:      entity.CategoryHardware,
		Tags:          []string{"Peripherals", "Setup"},
		Link:          "https://www.logitech.com/en-ph",
		StudentPrice:  "25% OFF",
		OriginalPrice: "MSRP",
		Popular:       false,
		BrandColor:    "#00B8FC",
		LogoURL:       "https://logo.clearbit.com/logitech.com",
		CoverImage:    "https://images.unsplash.com/photo-1587831990711-23ca6441447b?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "13",
		Name:          "Notion Personal Pro",
		Provider:      "Notion",
		Description:   "The all-in-one workspace for your notes, tasks, and wikis.",
		Features:      []string{"Unlimited file uploads", "30-day history", "Guest access"},
		Category:      entity.CategoryProductivity,
		Tags:          []string{"Notes", "Org", "AI"},
		Link:          "https://www.notion.so/product/notion-for-education",
		StudentPrice:  "Free",
		OriginalPrice: "$48/yr",
		Popular:       true,
		BrandColor:    "#FFFFFF",
		LogoURL:       "https://logo.clearbit.com/notion.so",
		CoverImage:    "https://images.unsplash.com/photo-1512314889357-e157c22f938d?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "14",
		Name:          "Microsoft 365",
		Provider:      "Microsoft",
		Description:   "Word, Excel, PowerPoint, OneNote, and Microsoft Teams.",
		Features:      []string{"Office Desktop Apps", "1TB OneDrive", "Teams Access"},
		Category:      entity.CategoryProductivity,
		Tags:          []string{"Office", "Docs"},
		Link:          "https://www.microsoft.com/en-ph/education/products/office",
		StudentPrice:  "Free",
		OriginalPrice: "₱3,499/yr",
		Popular:       false,
		BrandColor:    "#0078D4",
		LogoURL:       "https://logo.clearbit.com/microsoft.com",
		CoverImage:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "15",
		Name:          "1Password",
		Provider:      "1Password",
		Description:   "The most secure way to store and share passwords.",
		Features:      []string{"Unlimited passwords", "1GB Storage", "Watchtower"},
		Category:      entity.CategoryProductivity,
		Tags:          []string{"Security", "Tools"},
		Link:          "https://1password.com/student-discount/",
		StudentPrice:  "Free (1yr)",
		OriginalPrice: "$36/yr",
		Popular:       true,
		BrandColor:    "#0094F5",
		LogoURL:       "https://logo.clearbit.com/1password.com",
		CoverImage:    "https://images.unsplash.com/photo-1614064641938-3bbee52942c7?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "16",
		Name:          "Evernote",
		Provider:      "Evernote",
		Description:   "Tame your work, organize your life.",
		Features:      []string{"60MB monthly uploads", "Sync 2 devices", "Web clipper"},
		Category:      entity.CategoryProductivity,
		Tags:          []string{"Notes", "Org"},
		Link:          "https://evernote.com/students",
		StudentPrice:  "50% OFF",
		OriginalPrice: "₱130/mo",
		Popular:       false,
		BrandColor:    "#00A82D",
		LogoURL:       "https://logo.clearbit.com/evernote.com",
		CoverImage:    "https://images.unsplash.com/photo-1488190211105-8b0e65b80b4e?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "17",
		Name:          "Todoist",
		Provider:      "Doist",
		Description:   "The world's favorite task manager and to-do list app.",
		Features:      []string{"Pro Features", "Reminders", "Themes"},
		Category:      entity.CategoryProductivity,
		Tags:          []string{"Planning", "Org"},
		Link:          "https://todoist.com/education",
		StudentPrice:  "70% OFF",
		OriginalPrice: "$4/mo",
		Popular:       false,
		BrandColor:    "#E44332",
		LogoURL:       "https://logo.clearbit.com/todoist.com",
		CoverImage:    "https://images.unsplash.com/photo-1484480974693-6ca0a78fb36b?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "36",
		Name:          "Semrush",
		Provider:      "Semrush",
		Description:   "Access professional SEO and digital marketing tools for your marketing subjects.",
		Features:      []string{"SEO Toolkit", "Market Research", "Content Marketing"},
		Category:      entity.CategoryProductivity,
		Tags:          []string{"Marketing", "SEO", "Business"},
		Link:          "https://www.semrush.com/company/careers/students/",
		StudentPrice:  "Free Access",
		OriginalPrice: "$129/mo",
		Popular:       false,
		BrandColor:    "#FF642D",
		LogoURL:       "https://logo.clearbit.com/semrush.com",
		CoverImage:    "https://images.unsplash.com/photo-1432888498266-38ffec3eaf0a?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "18",
		Name:          "Canva for Education",
		Provider:      "Canva",
		Description:   "Design presentations, social media posts, and more with premium tools.",
		Features:      []string{"Premium templates", "Background remover", "Magic Resize"},
		Category:      entity.CategoryDesign,
		Tags:          []string{"Design", "Graphics", "AI"},
		Link:          "https://www.canva.com/education/",
		StudentPrice:  "Free",
		OriginalPrice: "₱2,490/yr",
		Popular:       true,
		BrandColor:    "#00C4CC",
		LogoURL:       "https://logo.clearbit.com/canva.com",
		CoverImage:    "https://images.unsplash.com/photo-1572044162444-ad60f128bdea?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "19",
		Name:          "Figma Professional",
		Provider:      "Figma",
		Description:   "The industry standard for UI/UX. Professional plan is free for students.",
		Features:      []string{"Unlimited files", "Team libraries", "Dev Mode access"},
		Category:      entity.CategoryDesign,
		Tags:          []string{"UI/UX", "Prototyping"},
		Link:          "https://www.figma.com/education/",
		StudentPrice:  "Free",
		OriginalPrice: "$144/yr",
		Popular:       true,
		BrandColor:    "#F24E1E",
		LogoURL:       "https://logo.clearbit.com/figma.com",
		CoverImage:    "https://images.unsplash.com/photo-1611162616475-46b635cb6868?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "20",
		Name:          "Adobe Creative Cloud",
		Provider:      "Adobe",
		Description:   "20+ creative apps including Photoshop, Illustrator, and Premiere Pro.",
		Features:      []string{"All Desktop Apps", "100GB Cloud Storage", "Adobe Fonts"},
		Category:      entity.CategoryDesign,
		Tags:          []string{"Photo", "Video", "AI"},
		Link:          "https://www.adobe.com/ph_en/creativecloud/buy/students.html",
		StudentPrice:  "₱966/mo",
		OriginalPrice: "₱2,600/mo",
		Popular:       true,
		BrandColor:    "#FF0000",
		LogoURL:       "https://logo.clearbit.com/adobe.com",
		CoverImage:    "https://images.unsplash.com/photo-1574717432722-a03306358bec?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "21",
		Name:          "Autodesk Education",
		Provider:      "Autodesk",
		Description:   "Professional 3D design software for architecture and engineering.",
		Features:      []string{"AutoCAD", "Maya & 3ds Max", "Fusion 360"},
		Category:      entity.CategoryDesign,
		Tags:          []string{"3D", "Engineering"},
		Link:          "https://www.autodesk.com/education/edu-software/overview",
		StudentPrice:  "Free",
		OriginalPrice: "$1,800+/yr",
		Popular:       false,
		BrandColor:    "#0696D7",
		LogoURL:       "https://logo.clearbit.com/autodesk.com",
		CoverImage:    "https://images.unsplash.com/photo-1503387762-592deb58ef4e?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "37",
		Name:          "SOLIDWORKS",
		Provider:      "Dassault Systèmes",
		Description:   "Industry-standard 3D CAD and simulation software for engineering students.",
		Features:      []string{"3D CAD Design", "Simulation", "Cloud Connect"},
		Category:      entity.CategoryDesign,
		Tags:          []string{"Engineering", "3D", "CAD"},
		Link:          "https://www.solidworks.com/product/students",
		StudentPrice:  "Discounted",
		OriginalPrice: "$4,000+",
		Popular:       false,
		BrandColor:    "#D82127",
		LogoURL:       "https://logo.clearbit.com/solidworks.com",
		CoverImage:    "https://images.unsplash.com/photo-1581094794329-c8112a89af12?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "22",
		Name:          "Ableton Live",
		Provider:      "Ableton",
		Description:   "Software for music creation and performance.",
		Features:      []string{"Live 11 Standard", "Max for Live", "Sound Library"},
		Category:      entity.CategoryDesign,
		Tags:          []string{"Music", "Audio"},
		Link:          "https://www.ableton.com/en/shop/education/",
		StudentPrice:  "40% OFF",
		OriginalPrice: "$449",
		Popular:       false,
		BrandColor:    "#E2E2E2",
		LogoURL:       "https://logo.clearbit.com/ableton.com",
		CoverImage:    "https://images.unsplash.com/photo-1598488035139-bdbb2231ce04?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "23",
		Name:          "Cinema 4D",
		Provider:      "Maxon",
		Description:   "Professional 3D modeling, animation, simulation and rendering software.",
		Features:      []string{"Redshift", "Red Giant", "ZBrush"},
		Category:      entity.CategoryDesign,
		Tags:          []string{"3D", "VFX"},
		Link:          "https://www.maxon.net/en/educational-licenses",
		StudentPrice:  "$10/6mo",
		OriginalPrice: "$100+/mo",
		Popular:       false,
		BrandColor:    "#2D3289",
		LogoURL:       "https://logo.clearbit.com/maxon.net",
		CoverImage:    "https://images.unsplash.com/photo-1617396900799-f4dc2b50d579?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "33",
		Name:          "Azure for Students",
		Provider:      "Microsoft",
		Description:   "Build in the cloud with free credits. No credit card required.",
		Features:      []string{"$100 Credits", "No Credit Card", "25+ Free Services"},
		Category:      entity.CategoryDevTools,
		Tags:          []string{"Cloud", "Hosting", "AI"},
		Link:          "https://azure.microsoft.com/en-us/free/students/",
		StudentPrice:  "Free $100",
		OriginalPrice: "Usage",
		Popular:       true,
		BrandColor:    "#0078D4",
		LogoURL:       "https://logo.clearbit.com/microsoft.com",
		CoverImage:    "https://images.unsplash.com/photo-1526666923127-b2970f64b422?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "24",
		Name:          "JetBrains IDE Pack",
		Provider:      "JetBrains",
		Description:   "Professional coding tools like IntelliJ IDEA, PyCharm, and WebStorm.",
		Features:      []string{"All JetBrains IDEs", "DotTrace", "DataGrip"},
		Category:      entity.CategoryDevTools,
		Tags:          []string{"Coding", "IDE"},
		Link:          "https://www.jetbrains.com/community/education/#students",
		StudentPrice:  "Free",
		OriginalPrice: "$289/yr",
		Popular:       true,
		BrandColor:    "#FF318C",
		LogoURL:       "https://logo.clearbit.com/jetbrains.com",
		CoverImage:    "https://images.unsplash.com/photo-1555099962-4199c345e5dd?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "25",
		Name:          "Namecheap",
		Provider:      "Namecheap",
		Description:   "Get a free .me domain name to kickstart your personal brand.",
		Features:      []string{"Free .me domain", "WhoisGuard", "SSL Certificate"},
		Category:      entity.CategoryDevTools,
		Tags:          []string{"Web", "Domains"},
		Link:          "https://nc.me/",
		StudentPrice:  "Free",
		OriginalPrice: "$18/yr",
		Popular:       false,
		BrandColor:    "#DE3723",
		LogoURL:       "https://logo.clearbit.com/namecheap.com",
		CoverImage:    "https://images.unsplash.com/photo-1558494949-efc0257bb3af?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "26",
		Name:          "Linear",
		Provider:      "Linear",
		Description:   "Streamlined issue tracking for software projects.",
		Features:      []string{"Unlimited issues", "Cycles & Roadmaps", "Git integration"},
		Category:      entity.CategoryDevTools,
		Tags:          []string{"Productivity", "PM"},
		Link:          "https://linear.app/method/linear-for-education",
		StudentPrice:  "Free",
		OriginalPrice: "$8/mo",
		Popular:       false,
		BrandColor:    "#5E6AD2",
		LogoURL:       "https://logo.clearbit.com/linear.app",
		CoverImage:    "https://images.unsplash.com/photo-1550684848-fac1c5b4e853?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "27",
		Name:          "DigitalOcean",
		Provider:      "DigitalOcean",
		Description:   "Simple, scalable cloud computing solutions.",
		Features:      []string{"$200 credit (1yr)", "Droplets", "App Platform"},
		Category:      entity.CategoryDevTools,
		Tags:          []string{"Cloud", "Hosting"},
		Link:          "https://www.digitalocean.com/github-students",
		StudentPrice:  "Free Credits",
		OriginalPrice: "Usage",
		Popular:       false,
		BrandColor:    "#0080FF",
		LogoURL:       "https://logo.clearbit.com/digitalocean.com",
		CoverImage:    "https://images.unsplash.com/photo-1544197150-b99a580bb7a8?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "28",
		Name:          "Unity",
		Provider:      "Unity",
		Description:   "The world's leading platform for creating real-time 3D content.",
		Features:      []string{"Unity Pro", "Learning Premium", "Asset Store 20% Off"},
		Category:      entity.CategoryDevTools,
		Tags:          []string{"Game Dev", "3D"},
		Link:          "https://unity.com/products/unity-student",
		StudentPrice:  "Free",
		OriginalPrice: "$1,800/yr",
		Popular:       false,
		BrandColor:    "#000000",
		LogoURL:       "https://logo.clearbit.com/unity.com",
		CoverImage:    "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "29",
		Name:          "Skillshare",
		Provider:      "Skillshare",
		Description:   "Explore thousands of hands-on creative classes.",
		Features:      []string{"Unlimited Classes", "Offline Viewing", "Projects"},
		Category:      entity.CategoryEducation,
		Tags:          []string{"Learning", "Creative"},
		Link:          "https://www.skillshare.com/en/school-scholarships",
		StudentPrice:  "50% OFF",
		OriginalPrice: "$32/mo",
		Popular:       false,
		BrandColor:    "#00FF84",
		LogoURL:       "https://logo.clearbit.com/skillshare.com",
		CoverImage:    "https://images.unsplash.com/photo-1501504905252-473c47e087f8?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "30",
		Name:          "Coursera",
		Provider:      "Coursera",
		Description:   "Build skills with courses, certificates, and degrees from top universities.",
		Features:      []string{"Guided Projects", "Certificates", "Financial Aid"},
		Category:      entity.CategoryEducation,
		Tags:          []string{"Learning", "Certificates"},
		Link:          "https://www.coursera.org/campus/students",
		StudentPrice:  "Free/Aid",
		OriginalPrice: "$59/mo",
		Popular:       false,
		BrandColor:    "#0056D2",
		LogoURL:       "https://logo.clearbit.com/coursera.org",
		CoverImage:    "https://images.unsplash.com/photo-1523240795612-9a054b0db644?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "31",
		Name:          "Headspace",
		Provider:      "Headspace",
		Description:   "Mindfulness and meditation for stress, focus, and sleep.",
		Features:      []string{"Guided Meditations", "Focus Music", "Sleepcasts"},
		Category:      entity.CategoryEducation,
		Tags:          []string{"Health", "Focus"},
		Link:          "https://www.headspace.com/studentplan",
		StudentPrice:  "$10/yr",
		OriginalPrice: "$70/yr",
		Popular:       false,
		BrandColor:    "#F47D31",
		LogoURL:       "https://logo.clearbit.com/headspace.com",
		CoverImage:    "https://images.unsplash.com/photo-1528319725582-ddc096101511?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:            "35",
		Name:          "DataCamp",
		Provider:      "DataCamp",
		Description:   "Learn Data Science, Python, R, and SQL. Free 3 months with GitHub Pack.",
		Features:      []string{"Python & R", "SQL Courses", "Certificates"},
		Category:      entity.CategoryEducation,
		Tags:          []string{"Coding", "Data", "Learning"},
		Link:          "https://www.datacamp.com/groups/education",
		StudentPrice:  "Free (3mo)",
		OriginalPrice: "$25/mo",
		Popular:       false,
		BrandColor:    "#03EF62",
		LogoURL:       "https://logo.clearbit.com/datacamp.com",
		CoverImage:    "https://images.unsplash.com/photo-1587620962725-abab7fe55159?auto=format&fit=crop&q=80&w=800",
	},
}
