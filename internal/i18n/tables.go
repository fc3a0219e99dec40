package i18n

// Key identifies a translatable string. Every key has an entry in every table.
type Key int

const (
	// Navigation
	Dashboard Key = iota
	Statistics
	Projects
	Settings

	// Statistics
	ModelCostComparison
	BreakdownByModelUsage
	Model
	Requests
	TotalCost
	AvgCost
	Share

	// Efficiency report
	EfficiencyReport
	WeeklyEfficiencyRating
	MonthlyEfficiencyRating
	QuarterlyEfficiencyRating
	WhatYoureDoingWell
	ImprovementSuggestions

	// Charts
	ConsumptionTrends
	Past7Days
	Past30Days
	Past90Days

	// Time range
	Today
	Week
	Month
	Quarter

	// Activity feed and dashboard cards
	RecentActivity
	LoadingActivities
	LatestAPIInteractions
	ShowLess
	ViewAll
	CostLabel
	WarningsCount
	ActiveProjectsLimit
	DailySpendVsBudget
	WeeklySpendVsBudget
	ActiveProjectsVsLimit
	WarningsVsThreshold
	DashboardSettings
	SaveSettings
	PricingCurrencySettings
	PrivacySecuritySettings
	SaveAllSettings
	CoffeePrice
	JianbingPrice
	MealPrice
	HotpotPrice
	InputPrice
	OutputPrice
	StoreRequestContent
	SimilarityDetectionMethod
	LoadOfficial
	AddModel
	ModelName
	Price
	Action
	APIKey
	BaseURL
	UpdateAll
	HashBased
	TextBased
	CacheTTL
	CacheExpirationTime
	AnonymizeProjectIDs
	ApplySHA256
	Coffee
	Jianbing
	Meal
	Hotpot
	TodayBudget
	WeekBudget
	ActiveProj
	Recording
	SimilarityLabel
	EfficiencyLabel
	RateLimitedLabel

	// Misc
	ExportCSV
	Loading
	NoData
	ReadyToAnalyze
	StartMakingAPICalls
	Alerts
	ConfigureBaselineValues
	AnalyzeAPIPatterns
	SarcasticAccountantAssessment
	EfficiencyRoomForImprovement
	ConfigureGlobalSettings
	ConfigureExchangeRatesAndModelPricing
	UsdToCnyExchangeRate
	ModelPricingConfiguration
	SetPricingForModels
	ConfigureDataHandlingPrivacy
	StoreRequestContentForAnalysis
	Teams
	Period
	FeedTheMachineMessage
	AILandlordMessage
	CountingCostMessage
	AuditingPatriarchyMessage
	ManicPixieMessage
	NotJudgingMessage
	CalculatingDistanceMessage
	AnotherDayMessage
	PercentProgressMessage
	MonitorProjectSpending
	CreatedDate
	ActiveStatus
	TotalConsumption
	EquivalentToCoffeeCups
	MonthlyTrend
	UsageAnalysis
	EquivalentTo
	DebugMode
	DevelopmentMode
	OptimizationMode

	// Terminal UI
	Initializing
	TerminalTooSmall
	CurrentSize
	FailedToLoad
	NotAvailable
	Estimated
	StatusHelp
	StatusSettings
	StatusLanguage
	StatusRefresh
	StatusQuit
	KeyboardShortcuts
	HelpSwitchViews
	HelpCycleViews
	HelpNavigate
	HelpSelect
	HelpGoBack
	HelpToggleHelp
	HelpOpenSettings
	HelpForceRefresh
	HelpToggleLanguage
	HelpCyclePeriod
	HelpExportCSV
	HelpWarnings
	HelpFeedback
	HelpPreferences
	HelpNewProject
	HelpDeleteProject
	HelpCycleEquivalent
	HelpPage
	HelpQuit
	HelpClose
	SettingsHelp
	PreferencesHelp
	WarningsHelp
	AlertTitle
	PressEnterToDismiss
	SettingsSaved
	SettingsSaveFailed
	OfficialMerged
	OfficialReplaced
	OfficialFailed
	FeedbackSent
	FeedbackFailed
	ExportedTo
	ExportFailed
	ProjectDeleted
	ProjectCreated
	NewProjectPrompt
	ConfirmDelete
	WarningsLast24h
	Critical
	ReportFalsePositive
	LanguageLabel
	RefreshInterval
	TimeRangeLabel
	EmailNotifications
	SlackNotifications
	WebhookEnabled
	Notifications
	PageOf
	PreferencesSaved
	Grade
	Score
	Save
	Unit

	keyCount
)

var en = [keyCount]string{
	Dashboard:                             "Dashboard",
	Statistics:                            "Statistics",
	Projects:                              "Projects",
	Settings:                              "Settings",
	ModelCostComparison:                   "Model Cost Comparison",
	BreakdownByModelUsage:                 "Breakdown by model usage",
	Model:                                 "Model",
	Requests:                              "Requests",
	TotalCost:                             "Total Cost",
	AvgCost:                               "Avg Cost",
	Share:                                 "Share",
	EfficiencyReport:                      "Efficiency Report",
	WeeklyEfficiencyRating:                "Weekly Efficiency Rating",
	MonthlyEfficiencyRating:               "Monthly Efficiency Rating",
	QuarterlyEfficiencyRating:             "Quarterly Efficiency Rating",
	WhatYoureDoingWell:                    "What you're doing well",
	ImprovementSuggestions:                "Improvement suggestions",
	ConsumptionTrends:                     "CONSUMPTION TRENDS",
	Past7Days:                             "PAST 7 DAYS",
	Past30Days:                            "PAST 30 DAYS",
	Past90Days:                            "PAST 90 DAYS",
	Today:                                 "Today",
	Week:                                  "Week",
	Month:                                 "Month",
	Quarter:                               "Quarter",
	RecentActivity:                        "RECENT ACTIVITY",
	LoadingActivities:                     "LOADING ACTIVITIES...",
	LatestAPIInteractions:                 "LATEST API INTERACTIONS",
	ShowLess:                              "SHOW LESS",
	ViewAll:                               "VIEW ALL",
	CostLabel:                             "COST:",
	WarningsCount:                         "Warnings",
	ActiveProjectsLimit:                   "Active Projects Limit",
	DailySpendVsBudget:                    "Daily Spend vs Budget",
	WeeklySpendVsBudget:                   "Weekly Spend vs Budget",
	ActiveProjectsVsLimit:                 "Active Projects vs Limit",
	WarningsVsThreshold:                   "Warnings vs Threshold",
	DashboardSettings:                     "Dashboard Settings",
	SaveSettings:                          "Save Settings",
	PricingCurrencySettings:               "Pricing & Currency Settings",
	PrivacySecuritySettings:               "Privacy & Security Settings",
	SaveAllSettings:                       "Save All Settings",
	CoffeePrice:                           "Coffee Price (CNY)",
	JianbingPrice:                         "Jianbing Price (CNY)",
	MealPrice:                             "Meal Price (CNY)",
	HotpotPrice:                           "Hotpot Price (CNY)",
	InputPrice:                            "Input Price ($)",
	OutputPrice:                           "Output Price ($)",
	StoreRequestContent:                   "Store Request Content",
	SimilarityDetectionMethod:             "Similarity Detection Method",
	LoadOfficial:                          "Load Official",
	AddModel:                              "Add Model",
	ModelName:                             "Model Name",
	Price:                                 "Price",
	Action:                                "Action",
	APIKey:                                "API Key",
	BaseURL:                               "Base URL",
	UpdateAll:                             "Update All",
	HashBased:                             "Hash-based (More Private)",
	TextBased:                             "Text-based (More Accurate)",
	CacheTTL:                              "Cache TTL (seconds)",
	CacheExpirationTime:                   "Cache expiration time",
	AnonymizeProjectIDs:                   "Anonymize Project IDs",
	ApplySHA256:                           "Apply SHA256 hashing to project identifiers",
	Coffee:                                "COFFEE",
	Jianbing:                              "JIANBING",
	Meal:                                  "MEAL",
	Hotpot:                                "HOTPOT",
	TodayBudget:                           "Today's Budget ($)",
	WeekBudget:                            "Week's Budget ($)",
	ActiveProj:                            "ACTIVE PROJ",
	Recording:                             "RECORDING",
	SimilarityLabel:                       "SIMILARITY:",
	EfficiencyLabel:                       "EFFICIENCY:",
	RateLimitedLabel:                      "RATE LIMITED:",
	ExportCSV:                             "Export CSV",
	Loading:                               "Loading...",
	NoData:                                "No data yet",
	ReadyToAnalyze:                        "Ready to analyze your API usage patterns",
	StartMakingAPICalls:                   "Start making API calls to get personalized efficiency insights",
	Alerts:                                "Alerts",
	ConfigureBaselineValues:               "Configure baseline values for dashboard meters",
	AnalyzeAPIPatterns:                    "Analyze your API usage patterns and efficiency.",
	SarcasticAccountantAssessment:         "Your sarcastic accountant's assessment",
	EfficiencyRoomForImprovement:          "Room for improvement, but not bad.",
	ConfigureGlobalSettings:               "Configure global settings for API monitoring and analysis.",
	ConfigureExchangeRatesAndModelPricing: "Configure exchange rates and model pricing",
	UsdToCnyExchangeRate:                  "USD to CNY Exchange Rate",
	ModelPricingConfiguration:             "Model Pricing Configuration",
	SetPricingForModels:                   "Set pricing for different AI models (per 1M tokens)",
	ConfigureDataHandlingPrivacy:          "Configure data handling and privacy preferences",
	StoreRequestContentForAnalysis:        "Store the actual content of API requests for analysis",
	Teams:                                 "teams",
	Period:                                "period",
	FeedTheMachineMessage:                 "Feed the Machine, or feed yourself. Choose wisely.",
	AILandlordMessage:                     "Your AI landlord is here for the rent.",
	CountingCostMessage:                   "Counting the cost of digital existence.",
	AuditingPatriarchyMessage:             "Auditing the patriarchy, one token at a time.",
	ManicPixieMessage:                     "Not a manic pixie dream girl, just a broke developer.",
	NotJudgingMessage:                     "I'm not judging your spending, the algorithm is.",
	CalculatingDistanceMessage:            "Calculating the distance between vibes and bills.",
	AnotherDayMessage:                     "Another day, another dollar... for Sam Altman.",
	PercentProgressMessage:                "0% progress, 100% fun.",
	MonitorProjectSpending:                "Monitor and configure your project spending.",
	CreatedDate:                           "Created",
	ActiveStatus:                          "Active",
	TotalConsumption:                      "Total Consumption",
	EquivalentToCoffeeCups:                "coffee cups",
	MonthlyTrend:                          "Monthly Trend",
	UsageAnalysis:                         "Usage Analysis",
	EquivalentTo:                          "Equivalent to",
	DebugMode:                             "Debug",
	DevelopmentMode:                       "Development",
	OptimizationMode:                      "Optimization",

	Initializing:        "Initializing...",
	TerminalTooSmall:    "Terminal too small (min 80x24)",
	CurrentSize:         "Current: %dx%d",
	FailedToLoad:        "Failed to load data",
	NotAvailable:        "N/A",
	Estimated:           "estimated per-model split",
	StatusHelp:          "help",
	StatusSettings:      "settings",
	StatusLanguage:      "language",
	StatusRefresh:       "refresh",
	StatusQuit:          "quit",
	KeyboardShortcuts:   "Keyboard Shortcuts",
	HelpSwitchViews:     "Switch views",
	HelpCycleViews:      "Cycle views",
	HelpNavigate:        "Move selection",
	HelpSelect:          "Select / open",
	HelpGoBack:          "Close dialog",
	HelpToggleHelp:      "Toggle help",
	HelpOpenSettings:    "Open settings",
	HelpForceRefresh:    "Refresh now",
	HelpToggleLanguage:  "Toggle English / 中文",
	HelpCyclePeriod:     "Cycle week / month / quarter",
	HelpExportCSV:       "Export statistics to CSV",
	HelpWarnings:        "Show warnings",
	HelpFeedback:        "Report false positive",
	HelpPreferences:     "Edit meter baselines",
	HelpNewProject:      "New project",
	HelpDeleteProject:   "Delete project",
	HelpCycleEquivalent: "Cycle equivalent unit",
	HelpPage:            "Previous / next page",
	HelpQuit:            "Quit",
	HelpClose:           "Press ? or Esc to close",
	SettingsHelp:        "j/k move  h/l change  e edit  a add  R rename  x delete  o/O official  w save  esc close",
	PreferencesHelp:     "j/k move  e edit  w save  esc close",
	WarningsHelp:        "j/k move  f report false positive  esc close",
	AlertTitle:          "Alert",
	PressEnterToDismiss: "Press Enter to dismiss",
	SettingsSaved:       "Settings saved successfully!",
	SettingsSaveFailed:  "Failed to save settings: %s",
	OfficialMerged:      "Official pricing loaded (new models only)!",
	OfficialReplaced:    "All pricing updated to official prices!",
	OfficialFailed:      "Failed to load official pricing",
	FeedbackSent:        "Feedback sent, thanks!",
	FeedbackFailed:      "Failed to send feedback: %s",
	ExportedTo:          "Exported to %s",
	ExportFailed:        "Export failed: %s",
	ProjectDeleted:      "Project %s deleted",
	ProjectCreated:      "Project %s created",
	NewProjectPrompt:    "New project name: ",
	ConfirmDelete:       "Delete %s? (y/n)",
	WarningsLast24h:     "Warnings (last 24h)",
	Critical:            "CRITICAL",
	ReportFalsePositive: "Report false positive",
	LanguageLabel:       "Language",
	RefreshInterval:     "Refresh (sec)",
	TimeRangeLabel:      "Time range",
	EmailNotifications:  "Email notifications",
	SlackNotifications:  "Slack notifications",
	WebhookEnabled:      "Webhook",
	Notifications:       "Notifications",
	PageOf:              "page %d of %d",
	PreferencesSaved:    "Preferences saved",
	Grade:               "Grade",
	Score:               "Score",
	Save:                "Save",
	Unit:                "Unit",
}

var zh = [keyCount]string{
	Dashboard:                             "仪表板",
	Statistics:                            "统计",
	Projects:                              "项目",
	Settings:                              "设置",
	ModelCostComparison:                   "模型成本对比",
	BreakdownByModelUsage:                 "按模型使用情况分解",
	Model:                                 "模型",
	Requests:                              "请求次数",
	TotalCost:                             "总费用",
	AvgCost:                               "平均费用",
	Share:                                 "占比",
	EfficiencyReport:                      "效率报告",
	WeeklyEfficiencyRating:                "每周效率评级",
	MonthlyEfficiencyRating:               "每月效率评级",
	QuarterlyEfficiencyRating:             "每季度效率评级",
	WhatYoureDoingWell:                    "表现良好的方面",
	ImprovementSuggestions:                "改进建议",
	ConsumptionTrends:                     "消费趋势",
	Past7Days:                             "过去7天",
	Past30Days:                            "过去30天",
	Past90Days:                            "过去90天",
	Today:                                 "今天",
	Week:                                  "本周",
	Month:                                 "本月",
	Quarter:                               "本季度",
	RecentActivity:                        "近期活动",
	LoadingActivities:                     "正在加载活动...",
	LatestAPIInteractions:                 "最新API交互",
	ShowLess:                              "收起",
	ViewAll:                               "查看全部",
	CostLabel:                             "费用:",
	WarningsCount:                         "警告",
	ActiveProjectsLimit:                   "活跃项目限制",
	DailySpendVsBudget:                    "每日支出与预算",
	WeeklySpendVsBudget:                   "每周支出与预算",
	ActiveProjectsVsLimit:                 "活跃项目与限制",
	WarningsVsThreshold:                   "警告与阈值",
	DashboardSettings:                     "仪表板设置",
	SaveSettings:                          "保存设置",
	PricingCurrencySettings:               "定价与货币设置",
	PrivacySecuritySettings:               "隐私与安全设置",
	SaveAllSettings:                       "保存全部设置",
	CoffeePrice:                           "咖啡价格 (人民币)",
	JianbingPrice:                         "煎饼价格 (人民币)",
	MealPrice:                             "餐食价格 (人民币)",
	HotpotPrice:                           "火锅价格 (人民币)",
	InputPrice:                            "输入价格 ($)",
	OutputPrice:                           "输出价格 ($)",
	StoreRequestContent:                   "存储请求内容",
	SimilarityDetectionMethod:             "相似度检测方法",
	LoadOfficial:                          "加载官方",
	AddModel:                              "添加模型",
	ModelName:                             "模型名称",
	Price:                                 "价格",
	Action:                                "操作",
	APIKey:                                "API密钥",
	BaseURL:                               "基础URL",
	UpdateAll:                             "更新全部",
	HashBased:                             "基于哈希（更私密）",
	TextBased:                             "基于文本（更精确）",
	CacheTTL:                              "缓存TTL（秒）",
	CacheExpirationTime:                   "缓存过期时间",
	AnonymizeProjectIDs:                   "匿名化项目ID",
	ApplySHA256:                           "对项目标识符应用SHA256哈希",
	Coffee:                                "咖啡",
	Jianbing:                              "煎饼",
	Meal:                                  "餐食",
	Hotpot:                                "火锅",
	TodayBudget:                           "今日预算（$）",
	WeekBudget:                            "本周预算（$）",
	ActiveProj:                            "活跃项目",
	Recording:                             "记录中",
	SimilarityLabel:                       "相似度：",
	EfficiencyLabel:                       "效率：",
	RateLimitedLabel:                      "频率限制：",
	ExportCSV:                             "导出CSV",
	Loading:                               "加载中...",
	NoData:                                "暂无数据",
	ReadyToAnalyze:                        "准备分析您的API使用模式",
	StartMakingAPICalls:                   "开始进行API调用以获得个性化的效率洞察",
	Alerts:                                "警报",
	ConfigureBaselineValues:               "配置仪表板计量器的基线值",
	AnalyzeAPIPatterns:                    "分析您的API使用模式和效率。",
	SarcasticAccountantAssessment:         "您讽刺的会计师的评估",
	EfficiencyRoomForImprovement:          "还有改进空间，但已经不错了。",
	ConfigureGlobalSettings:               "配置API监控和分析的全局设置。",
	ConfigureExchangeRatesAndModelPricing: "配置汇率和模型定价",
	UsdToCnyExchangeRate:                  "美元至人民币汇率",
	ModelPricingConfiguration:             "模型定价配置",
	SetPricingForModels:                   "设置不同AI模型的价格（每100万tokens）",
	ConfigureDataHandlingPrivacy:          "配置数据处理和隐私首选项",
	StoreRequestContentForAnalysis:        "存储API请求的实际内容以供分析",
	Teams:                                 "团队",
	Period:                                "期间",
	FeedTheMachineMessage:                 "喂养机器，或喂养自己。明智选择。",
	AILandlordMessage:                     "您的AI房东来收房租了。",
	CountingCostMessage:                   "计算数字存在的代价。",
	AuditingPatriarchyMessage:             "一次一个token地审查父权制。",
	ManicPixieMessage:                     "不是曼奇派梦女孩，只是一个穷困的开发者。",
	NotJudgingMessage:                     "我不是在评判你的消费，是算法在评判。",
	CalculatingDistanceMessage:            "计算氛围和账单之间的距离。",
	AnotherDayMessage:                     "又是一天，又是一块钱……给Sam Altman。",
	PercentProgressMessage:                "0%进度，100%乐趣。",
	MonitorProjectSpending:                "监控和配置您的项目支出。",
	CreatedDate:                           "创建于",
	ActiveStatus:                          "活跃",
	TotalConsumption:                      "总消耗量",
	EquivalentToCoffeeCups:                "杯咖啡",
	MonthlyTrend:                          "月度趋势",
	UsageAnalysis:                         "使用情况分析",
	EquivalentTo:                          "相当于",
	DebugMode:                             "调试",
	DevelopmentMode:                       "开发",
	OptimizationMode:                      "优化",

	Initializing:        "初始化中...",
	TerminalTooSmall:    "终端窗口太小（最小 80x24）",
	CurrentSize:         "当前：%dx%d",
	FailedToLoad:        "数据加载失败",
	NotAvailable:        "暂无",
	Estimated:           "按模型估算的分布",
	StatusHelp:          "帮助",
	StatusSettings:      "设置",
	StatusLanguage:      "语言",
	StatusRefresh:       "刷新",
	StatusQuit:          "退出",
	KeyboardShortcuts:   "快捷键",
	HelpSwitchViews:     "切换视图",
	HelpCycleViews:      "循环切换视图",
	HelpNavigate:        "移动选择",
	HelpSelect:          "选择 / 打开",
	HelpGoBack:          "关闭对话框",
	HelpToggleHelp:      "显示 / 隐藏帮助",
	HelpOpenSettings:    "打开设置",
	HelpForceRefresh:    "立即刷新",
	HelpToggleLanguage:  "切换 English / 中文",
	HelpCyclePeriod:     "切换 周 / 月 / 季度",
	HelpExportCSV:       "导出统计到CSV",
	HelpWarnings:        "查看警告",
	HelpFeedback:        "报告误报",
	HelpPreferences:     "编辑计量器基线",
	HelpNewProject:      "新建项目",
	HelpDeleteProject:   "删除项目",
	HelpCycleEquivalent: "切换等价单位",
	HelpPage:            "上一页 / 下一页",
	HelpQuit:            "退出",
	HelpClose:           "按 ? 或 Esc 关闭",
	SettingsHelp:        "j/k 移动  h/l 切换  e 编辑  a 添加  R 重命名  x 删除  o/O 官方价格  w 保存  esc 关闭",
	PreferencesHelp:     "j/k 移动  e 编辑  w 保存  esc 关闭",
	WarningsHelp:        "j/k 移动  f 报告误报  esc 关闭",
	AlertTitle:          "提示",
	PressEnterToDismiss: "按回车关闭",
	SettingsSaved:       "设置保存成功！",
	SettingsSaveFailed:  "设置保存失败：%s",
	OfficialMerged:      "已加载官方价格（仅新增模型）！",
	OfficialReplaced:    "全部价格已更新为官方价格！",
	OfficialFailed:      "加载官方价格失败",
	FeedbackSent:        "反馈已发送，谢谢！",
	FeedbackFailed:      "反馈发送失败：%s",
	ExportedTo:          "已导出到 %s",
	ExportFailed:        "导出失败：%s",
	ProjectDeleted:      "项目 %s 已删除",
	ProjectCreated:      "项目 %s 已创建",
	NewProjectPrompt:    "新项目名称：",
	ConfirmDelete:       "删除 %s？(y/n)",
	WarningsLast24h:     "警告（最近24小时）",
	Critical:            "严重",
	ReportFalsePositive: "报告误报",
	LanguageLabel:       "语言",
	RefreshInterval:     "刷新间隔（秒）",
	TimeRangeLabel:      "时间范围",
	EmailNotifications:  "邮件通知",
	SlackNotifications:  "Slack通知",
	WebhookEnabled:      "Webhook",
	Notifications:       "通知",
	PageOf:              "第 %d 页，共 %d 页",
	PreferencesSaved:    "偏好已保存",
	Grade:               "等级",
	Score:               "分数",
	Save:                "保存",
	Unit:                "单位",
}

var tables = map[Language]*[keyCount]string{
	EN: &en,
	ZH: &zh,
}
