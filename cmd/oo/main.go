/* Coordinate conversions for working with Maxar ARD */
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	oo "github.com/celoyd/oo/src"
	"github.com/charmbracelet/log"
)

func main() {
	var args = os.Args[1:]

	// Deliberately not a flag package: longitudes like -99.09 are ordinary
	// arguments here and GNU-style parsers would eat them.
	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			usage()
			return
		}
	}

	var message string
	var err error
	switch len(args) {
	case 1:
		message, err = fromMGS(args[0])
	case 2:
		message, err = fromLonLat(args[0], args[1])
	case 3:
		message, err = fromUTM(args[0], args[1], args[2])
	default:
		err = fmt.Errorf("expected 1 argument (MGS coord), 2 (lon lat), or 3 (UTM), but got %d; see --help", len(args))
	}

	if err != nil {
		if errors.Is(err, oo.ErrConversion) {
			// Not user error; something is wrong underneath.
			log.Fatal("Internal conversion failure", "err", err)
		}
		log.Fatal(err)
	}

	fmt.Println(message)
}

func fromLonLat(lonArg, latArg string) (string, error) {
	var lon, lonErr = strconv.ParseFloat(lonArg, 64)
	if lonErr != nil {
		return "", fmt.Errorf("expected a numeric longitude but got %q", lonArg)
	}

	var lat, latErr = strconv.ParseFloat(latArg, 64)
	if latErr != nil {
		return "", fmt.Errorf("expected a numeric latitude but got %q", latArg)
	}

	var ll, err = oo.NewLonLat(lon, lat)
	if err != nil {
		return "", err
	}

	return oo.Message(ll)
}

func fromUTM(zoneArg, eastingArg, northingArg string) (string, error) {
	var zone, hemi, err = oo.ParseUTMZone(zoneArg)
	if err != nil {
		return "", err
	}

	var easting, eastingErr = strconv.ParseFloat(eastingArg, 64)
	if eastingErr != nil {
		return "", fmt.Errorf("expected a numeric UTM easting but got %q", eastingArg)
	}

	var northing, northingErr = strconv.ParseFloat(northingArg, 64)
	if northingErr != nil {
		return "", fmt.Errorf("expected a numeric UTM northing but got %q", northingArg)
	}

	return oo.MessageFromUTM(oo.UTMCoord{Zone: zone, Hemi: hemi, Easting: easting, Northing: northing})
}

func fromMGS(arg string) (string, error) {
	var mgs, err = oo.ParseMGS(arg)
	if err != nil {
		return "", err
	}

	return oo.MessageFromMGS(mgs)
}

func usage() {
	fmt.Println("oo is a utility for coordinate conversions useful with Maxar ARD.")
	fmt.Println("Give it any of WGS84 (lon, lat), UTM, or Maxar Grid System")
	fmt.Println("coordinates to get all three.")
	fmt.Println("")
	fmt.Println("Usage (matched by argument count):")
	fmt.Println("\too <MGS cell in ZZ/QKQKQKQKQKQK format>")
	fmt.Println("\too <longitude> <latitude>")
	fmt.Println("\too <UTM zone> <easting> <northing>")
	fmt.Println("")
	fmt.Println("Example:")
	fmt.Println("\t$ oo -99.09357951534054 19.29675919163688")
	fmt.Println("\tLon, lat: -99.09358, 19.29676")
	fmt.Println("\tLat/lon: 19.29676/-99.09358")
	fmt.Println("\t14N 490168 2133666")
	fmt.Println("\t14/033113131312")
	fmt.Println("")
	fmt.Println("Conventions:")
	fmt.Println("1. MGS cells are treated as their reference points in conversions,")
	fmt.Println("   and are read and written only at level 12.")
	fmt.Println("2. WGS84 (lon/lat) and UTM coordinates are read at any (float64)")
	fmt.Println("   precision but written at ~1 meter precision (integer for UTM,")
	fmt.Println("   5 decimals for WGS84).")
	fmt.Println("3. MGS and UTM coordinates are read in any zone but written in")
	fmt.Println("   their canonical zone.")
}
