// Command sampledata writes a workbook in the layout the invoice
// generator expects, for trying the upload flow end to end.
package main

import (
	"flag"
	"log"

	"github.com/xuri/excelize/v2"
)

var sampleRows = [][]interface{}{
	{"Headers", "Invoice Info", "Customer Info", "Items", "Payment", ""},
	{"INV-000001", "10/07/2025", "10/07/2025", "Gujarat (24)", "1000.00", ""},
	{"Team RockitRoot - Prachiti Prakash Patil", "B-10, Devranya Duplex, Dabhoi-Waghodia Ring Road BRD", "Vadodara", "Gujarat", "390019", "India"},
	{"Ideathon 2025 Competition Registration Fee", "999729", 1.0, 847.46, 9, 9},
	{"Additional Service", "998800", 2.0, 100.0, 9, 9},
}

func main() {
	out := flag.String("out", "sample_gst_invoice.xlsx", "output workbook path")
	flag.Parse()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range sampleRows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			log.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cellRef, &row); err != nil {
			log.Fatal(err)
		}
	}

	if err := f.SaveAs(*out); err != nil {
		log.Fatal("Failed to write sample workbook:", err)
	}
	log.Printf("Sample GST workbook created: %s", *out)
}
