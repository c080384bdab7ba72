package steamtools

// ItemState is the per-item bitmask reported by the SDK for
// subscription/download/installation status. Values match the vendor SDK's
// EItemState enumeration.
type ItemState uint32

// Item state flags (typed).
const (
	ItemStateNone            ItemState = 0
	ItemStateSubscribed      ItemState = 1
	ItemStateLegacy          ItemState = 2
	ItemStateInstalled       ItemState = 4
	ItemStateNeedsUpdate     ItemState = 8
	ItemStateDownloading     ItemState = 16
	ItemStateDownloadPending ItemState = 32
)

// Has reports whether all bits in flag are set.
func (s ItemState) Has(flag ItemState) bool { return s&flag == flag }

// WorkshopItem is the descriptor produced by a successful item query.
// Immutable after construction; serialized across the host boundary.
type WorkshopItem struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Preview     string `json:"preview,omitempty"`
}

// LocalItem describes one installed, subscribed item on disk.
type LocalItem struct {
	ID         uint64 `json:"id"`
	Path       string `json:"path"`
	SizeOnDisk uint64 `json:"size_on_disk"`
}

// ItemRecord is a single result record returned by the SDK for an item
// query. Preview is best-effort and may be empty.
type ItemRecord struct {
	ID          uint64
	Title       string
	Description string
	Preview     string
}

// QueryResult is handed to a query's completion callback when the pump
// drains it. Err carries the transport/query failure the SDK reported
// asynchronously; on success Records holds the result records, with a
// single-item query's record at index 0.
type QueryResult struct {
	Err     error
	Records []ItemRecord
}

// ItemInstallInfo describes the on-disk installation of an item.
type ItemInstallInfo struct {
	Folder     string
	SizeOnDisk uint64
}
