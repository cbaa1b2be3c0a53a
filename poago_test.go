package poago

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjeanneret/PoaGo/internal/sdk"
)

// newTestDriver builds a mock with one typical camera attached.
func newTestDriver() *sdk.Mock {
	return sdk.NewMock(sdk.NewMockDevice(0, "Mars-C", "SN000001"))
}

// openTestCamera enumerates the mock and opens the first camera.
func openTestCamera(t *testing.T, drv *sdk.Mock) *Camera {
	t.Helper()
	cams, err := listCameras(drv)
	require.NoError(t, err)
	require.Len(t, cams, 1)
	cam, err := cams[0].Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = cam.Close() })
	return cam
}

// unreachableDriver simulates the vendor service being down.
type unreachableDriver struct {
	*sdk.Mock
}

func (unreachableDriver) CameraCount() (int, error) {
	return 0, errors.New("POA service unreachable")
}

func TestListCameras_Snapshot(t *testing.T) {
	drv := sdk.NewMock(
		sdk.NewMockDevice(0, "Mars-C", "SN000001"),
		sdk.NewMockDevice(3, "Neptune-C II", "SN000002"),
	)

	cams, err := listCameras(drv)
	require.NoError(t, err)
	require.Len(t, cams, 2)

	assert.Equal(t, 0, cams[0].ID())
	assert.Equal(t, "Mars-C", cams[0].Model())
	assert.Equal(t, "SN000001", cams[0].SerialNumber())
	assert.Equal(t, 3, cams[1].ID())
	assert.Equal(t, "Neptune-C II", cams[1].Model())
}

func TestListCameras_EmptyIsNotAnError(t *testing.T) {
	cams, err := listCameras(sdk.NewMock())
	require.NoError(t, err)
	assert.Empty(t, cams)
}

func TestListCameras_DriverUnreachable(t *testing.T) {
	_, err := listCameras(unreachableDriver{sdk.NewMock()})
	var enumErr *EnumerationError
	require.ErrorAs(t, err, &enumErr)
}

func TestDescriptor_PropertiesWithoutOpening(t *testing.T) {
	drv := newTestDriver()
	cams, err := listCameras(drv)
	require.NoError(t, err)

	props := cams[0].Properties()
	assert.Equal(t, 1920, props.MaxWidth)
	assert.Equal(t, 1080, props.MaxHeight)
	assert.Equal(t, 12, props.BitDepth)
	assert.Equal(t, []int{1, 2, 4}, props.Bins)
	assert.True(t, props.SupportsFormat(RAW16))
	assert.True(t, props.SupportsBin(4))
	assert.False(t, props.SupportsBin(3))
}
