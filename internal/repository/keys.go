package repository

// 全局表键名：每个键存一个 userID -> 数据 的JSON映射（users表是数组）
const (
	keyUsers      = "sanvii:users"
	keyProfiles   = "sanvii:profiles"
	keyPaths      = "sanvii:paths"
	keyActivePath = "sanvii:active_path"
	keyMessages   = "sanvii:messages"
	keyTopicChats = "sanvii:topic_chats"
	keyResumes    = "sanvii:resume_analysis"
	keySessions   = "sanvii:session"
)
