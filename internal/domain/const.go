package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY    = "https://ipfs.io"
	DEFAULT_ARWEAVE_GATEWAY = "https://arweave.net"

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"
	TEZOS_ZERO_ADDRESS    = "tz1burnburnburnburnburnburnburjAYjjX"

	// PLACEHOLDER_THUMBNAIL_CID is the circular default thumbnail some Tezos indexers return
	PLACEHOLDER_THUMBNAIL_CID = "QmNrhZHUaEqxhyLfqoq1mtHSipkWHeT31LNHb1QEbDHgnc"

	// Queue defaults
	DEFAULT_QUEUE_LIMIT = 50
	MAX_QUEUE_LIMIT     = 500

	// Subject prefix for import events published to NATS
	SUBJECT_ARTWORK_IMPORTED = "artwork.imported"
)

// PlaceholderThumbnailCIDs is the deny-list of generic thumbnail hashes
var PlaceholderThumbnailCIDs = []string{
	PLACEHOLDER_THUMBNAIL_CID,
}
