package pinning_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wallace-museum/nft-importer/internal/adapter"
	"github.com/wallace-museum/nft-importer/internal/mocks"
	"github.com/wallace-museum/nft-importer/internal/pinning"
	"github.com/wallace-museum/nft-importer/internal/store/schema"
)

const (
	cidImage = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"
	cidAnim  = "bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"
)

func ptr(s string) *string { return &s }

func TestExtractReferences(t *testing.T) {
	artwork := &schema.Artwork{
		ImageURL:     ptr("ipfs://" + cidImage + "/image.png"),
		ThumbnailURL: ptr("https://ipfs.io/ipfs/" + cidImage),
		AnimationURL: ptr("https://" + cidAnim + ".ipfs.dweb.link/index.html"),
		GeneratorURL: ptr("https://generator.example.com/?seed=1"),
	}

	assert.Equal(t, []string{cidImage, cidAnim}, pinning.ExtractReferences(artwork))
	assert.Nil(t, pinning.ExtractReferences(nil))
	assert.Empty(t, pinning.ExtractReferences(&schema.Artwork{}))
}

func TestHTTPPinner_Pin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	pinner := pinning.NewHTTPPinner(httpClient, "https://pin.example.com/", "secret")
	ctx := context.Background()

	httpClient.EXPECT().
		PostWithHeaders(ctx, "https://pin.example.com/pins", "application/json", gomock.Any(), map[string]string{"Authorization": "Bearer secret"}).
		DoAndReturn(func(_ context.Context, _, _ string, body io.Reader, _ map[string]string) ([]byte, error) {
			data, err := io.ReadAll(body)
			require.NoError(t, err)
			var req map[string]string
			require.NoError(t, json.Unmarshal(data, &req))
			assert.Equal(t, cidImage, req["cid"])
			assert.Equal(t, "0xabc:1", req["name"])
			return []byte(`{"requestid":"1","status":"queued"}`), nil
		})

	require.NoError(t, pinner.Pin(ctx, cidImage, "0xabc:1"))
}

func TestHTTPPinner_AlreadyPinned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	pinner := pinning.NewHTTPPinner(httpClient, "https://pin.example.com", "")

	httpClient.EXPECT().
		PostWithHeaders(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), map[string]string{}).
		Return(nil, &adapter.StatusError{URL: "https://pin.example.com/pins", StatusCode: 409})

	assert.NoError(t, pinner.Pin(context.Background(), cidImage, ""))
}

func TestHTTPPinner_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	pinner := pinning.NewHTTPPinner(httpClient, "https://pin.example.com", "secret")

	httpClient.EXPECT().
		PostWithHeaders(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	err := pinner.Pin(context.Background(), cidImage, "label")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to pin")

	assert.Error(t, pinner.Pin(context.Background(), "", "label"))
}

func TestNoopPinner(t *testing.T) {
	pinner := pinning.NewNoopPinner()
	assert.Nil(t, pinner.ExtractReferences(&schema.Artwork{ImageURL: ptr("ipfs://" + cidImage)}))
	assert.NoError(t, pinner.Pin(context.Background(), cidImage, ""))
}
