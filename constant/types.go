package constant

const (
	DefaultSyncRatio = 4
)

const (
	BlockSize = 4096 // 4k
)

const (
	DefaultName = "anxiety"
)
