package phenor

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
	"github.com/scelmendorf/phenor/forcing"
)

// ShapeVector is the default output adapter: a defensive copy of the raw
// per-site DOY vector, ordered as the forcing's site columns.
func ShapeVector(_ *forcing.Forcing, doy []float64) []float64 {
	out := make([]float64, len(doy))
	copy(out, doy)
	return out
}

// WriteRaster projects the per-site DOY vector onto a grid definition using
// the forcing's raster cell IDs and writes a little-endian BIL with its HDR.
// Undefined sites stay at the nodata value.
func WriteRaster(gd *grid.Definition, frc *forcing.Forcing, doy []float64, fp string) error {
	if frc.Cids == nil {
		return fmt.Errorf("%w: forcing carries no raster cell IDs", ErrMissingDriver)
	}
	if len(frc.Cids) != len(doy) {
		return fmt.Errorf(" phenor.WriteRaster: %d cell IDs for %d sites", len(frc.Cids), len(doy))
	}

	a := gd.NullArray(-9999.)
	for k, c := range frc.Cids {
		if doy[k] != DateUndefined {
			a[c] = doy[k]
		}
	}

	f32 := make([]float32, len(a))
	for i, v := range a {
		f32[i] = float32(v)
	}
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, f32)
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf(" phenor.WriteRaster %v", err)
	}
	gd.ToHDRfloat(mmio.RemoveExtension(fp)+".hdr", 1, 32)
	return nil
}
