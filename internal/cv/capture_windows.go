//go:build windows
// +build windows

package cv

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                     = windows.NewLazySystemDLL("user32.dll")
	gdi32                      = windows.NewLazySystemDLL("gdi32.dll")
	procGetDC                  = user32.NewProc("GetDC")
	procReleaseDC              = user32.NewProc("ReleaseDC")
	procGetSystemMetrics       = user32.NewProc("GetSystemMetrics")
	procCreateCompatibleDC     = gdi32.NewProc("CreateCompatibleDC")
	procCreateCompatibleBitmap = gdi32.NewProc("CreateCompatibleBitmap")
	procSelectObject           = gdi32.NewProc("SelectObject")
	procBitBlt                 = gdi32.NewProc("BitBlt")
	procDeleteDC               = gdi32.NewProc("DeleteDC")
	procDeleteObject           = gdi32.NewProc("DeleteObject")
	procGetDIBits              = gdi32.NewProc("GetDIBits")
)

const (
	SRCCOPY        = 0x00CC0020
	BI_RGB         = 0
	DIB_RGB_COLORS = 0

	smCXScreen = 0
	smCYScreen = 1
)

// BITMAPINFOHEADER structure
type BITMAPINFOHEADER struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// BITMAPINFO structure
type BITMAPINFO struct {
	BmiHeader BITMAPINFOHEADER
	BmiColors [1]uint32
}

// ScreenCapture copies the primary display through GDI. GetDIBits already
// produces the blue, green, red, reserved layout Frame expects, so no channel
// swap is needed.
type ScreenCapture struct {
	width  int
	height int
}

// NewPrimaryDisplayCapturer opens a capture session on the primary display
func NewPrimaryDisplayCapturer() (Capturer, error) {
	w, _, _ := procGetSystemMetrics.Call(smCXScreen)
	h, _, _ := procGetSystemMetrics.Call(smCYScreen)

	width, height := int(int32(w)), int(int32(h))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("couldn't find primary display: dimensions %dx%d", width, height)
	}

	return &ScreenCapture{width: width, height: height}, nil
}

// CaptureFrame copies the current screen contents. A copy that yields fewer
// scan lines than the screen height is reported as ErrFrameNotReady.
func (sc *ScreenCapture) CaptureFrame() (*Frame, error) {
	// Desktop DC
	hdcScreen, _, err := procGetDC.Call(0)
	if hdcScreen == 0 {
		return nil, fmt.Errorf("failed to get screen DC: %v", err)
	}
	defer procReleaseDC.Call(0, hdcScreen)

	hdcMem, _, err := procCreateCompatibleDC.Call(hdcScreen)
	if hdcMem == 0 {
		return nil, fmt.Errorf("failed to create compatible DC: %v", err)
	}
	defer procDeleteDC.Call(hdcMem)

	hBitmap, _, err := procCreateCompatibleBitmap.Call(
		hdcScreen,
		uintptr(sc.width),
		uintptr(sc.height),
	)
	if hBitmap == 0 {
		return nil, fmt.Errorf("failed to create compatible bitmap: %v", err)
	}
	defer procDeleteObject.Call(hBitmap)

	_, _, _ = procSelectObject.Call(hdcMem, hBitmap)

	ret, _, err := procBitBlt.Call(
		hdcMem,
		0, 0,
		uintptr(sc.width), uintptr(sc.height),
		hdcScreen,
		0, 0,
		SRCCOPY,
	)
	if ret == 0 {
		return nil, fmt.Errorf("BitBlt failed: %v", err)
	}

	var bi BITMAPINFO
	bi.BmiHeader.Size = uint32(unsafe.Sizeof(bi.BmiHeader))
	bi.BmiHeader.Width = int32(sc.width)
	bi.BmiHeader.Height = -int32(sc.height) // Negative for top-down bitmap
	bi.BmiHeader.Planes = 1
	bi.BmiHeader.BitCount = 32
	bi.BmiHeader.Compression = BI_RGB

	// 32bpp rows are already DWORD aligned
	stride := sc.width * 4
	buffer := make([]byte, stride*sc.height)

	lines, _, err := procGetDIBits.Call(
		hdcMem,
		hBitmap,
		0,
		uintptr(sc.height),
		uintptr(unsafe.Pointer(&buffer[0])),
		uintptr(unsafe.Pointer(&bi)),
		DIB_RGB_COLORS,
	)
	if lines == 0 {
		return nil, fmt.Errorf("GetDIBits failed: %v", err)
	}
	if int(lines) < sc.height {
		return nil, ErrFrameNotReady
	}

	return NewFrameWithStride(sc.width, sc.height, stride, buffer)
}

// GetDimensions returns the display dimensions
func (sc *ScreenCapture) GetDimensions() (width, height int) {
	return sc.width, sc.height
}
