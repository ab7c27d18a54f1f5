package main

import (
	"fmt"
	"io"
	"net"
	"projekt/comms/lib/network"
	"text/tabwriter"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const missing = "-"

func writeTable(w io.Writer, summaries []network.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	_, err := fmt.Fprintln(tw, "INDEX\tNAME\tSTATUS\tADDRESS\tBROADCAST\tGATEWAY")
	if err != nil {
		return err
	}
	for i := range summaries {
		s := &summaries[i]
		status, _ := s.Status.MarshalText()
		address := missing
		if prefix, ok := s.Prefix(); ok {
			address = prefix.String()
		}
		_, err = fmt.Fprintf(tw, "%v\t%v\t%s\t%v\t%v\t%v\n",
			s.Index, s.Name, status, address, ipOrMissing(s.Broadcast), ipOrMissing(s.Gateway))
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeJson(w io.Writer, summaries []network.Summary) error {
	m, err := toStruct(summaries)
	if err != nil {
		return err
	}
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func toStruct(summaries []network.Summary) (*structpb.Struct, error) {
	list := make([]interface{}, 0, len(summaries))
	for i := range summaries {
		s := &summaries[i]
		status, _ := s.Status.MarshalText()
		entry := map[string]interface{}{
			"index":     s.Index,
			"name":      s.Name,
			"mtu":       s.MTU,
			"status":    string(status),
			"usable":    s.IsUsable(),
			"loopback":  s.IsLoopback(),
			"address":   ipOrNil(s.Address),
			"broadcast": ipOrNil(s.Broadcast),
			"gateway":   ipOrNil(s.Gateway),
			"prefix":    nil,
			"hardware":  nil,
		}
		if prefix, ok := s.Prefix(); ok {
			entry["prefix"] = prefix.String()
		}
		if len(s.HardwareAddr) > 0 {
			entry["hardware"] = s.HardwareAddr.String()
		}
		list = append(list, entry)
	}
	return structpb.NewStruct(map[string]interface{}{
		"interfaces": list,
	})
}

func ipOrMissing(ip net.IP) string {
	if ip == nil {
		return missing
	}
	return ip.String()
}

func ipOrNil(ip net.IP) interface{} {
	if ip == nil {
		return nil
	}
	return ip.String()
}
