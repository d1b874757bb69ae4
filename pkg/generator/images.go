package generator

// ImageSet is the curated hero/gallery assignment for one business.
type ImageSet struct {
	Hero    string   `json:"hero"`
	Gallery []string `json:"gallery"`
}

// ImagesFor picks the hero image and gallery set for a business: curated pool
// by industry, index by the stable hash of the seed. Same seed, same images,
// on every call — previews must not flicker between visits. Empty seeds are
// valid and resolve to the pool's first entry.
func ImagesFor(industryKey, seed string) ImageSet {
	pool, ok := imagePools[industryKey]
	if !ok {
		pool = imagePools[IndustryGeneral]
	}
	return pool[PickIndex(seed, len(pool))]
}

func unsplash(id string) string {
	return "https://images.unsplash.com/photo-" + id + "?auto=format&fit=crop&w=1600&q=80"
}

// Curated stock pools per industry. Two to three sets each; gallery entries
// reuse the industry's visual vocabulary so regenerated previews still look
// native to the trade.
var imagePools = map[string][]ImageSet{
	IndustryBeauty: {
		{
			Hero: unsplash("1560066984-138dadb4c035"),
			Gallery: []string{
				unsplash("1522337660859-02fbefca4702"),
				unsplash("1519415943484-9fa1873496d4"),
				unsplash("1487412947147-5cebf100ffc2"),
			},
		},
		{
			Hero: unsplash("1600948836101-f9ffda59d250"),
			Gallery: []string{
				unsplash("1580618672591-eb180b1a973f"),
				unsplash("1596462502278-27bfdc403348"),
				unsplash("1516975080664-ed2fc6a32937"),
			},
		},
	},
	IndustryFood: {
		{
			Hero: unsplash("1517248135467-4c7edcad34c4"),
			Gallery: []string{
				unsplash("1414235077428-338989a2e8c0"),
				unsplash("1555396273-367ea4eb4db5"),
				unsplash("1476224203421-9ac39bcb3327"),
			},
		},
		{
			Hero: unsplash("1504674900247-0877df9cc836"),
			Gallery: []string{
				unsplash("1466978913421-dad2ebd01d17"),
				unsplash("1551218808-94e220e084d2"),
				unsplash("1540189549336-e6e99c3679fe"),
			},
		},
		{
			Hero: unsplash("1559339352-11d035aa65de"),
			Gallery: []string{
				unsplash("1565299624946-b28f40a0ae38"),
				unsplash("1482049016688-2d3e1b311543"),
				unsplash("1495474472287-4d71bcdd2085"),
			},
		},
	},
	IndustryTrades: {
		{
			Hero: unsplash("1504307651254-35680f356dfd"),
			Gallery: []string{
				unsplash("1581578731548-c64695cc6952"),
				unsplash("1621905251189-08b45d6a269e"),
				unsplash("1541888946425-d81bb19240f5"),
			},
		},
		{
			Hero: unsplash("1581094794329-c8112a89af12"),
			Gallery: []string{
				unsplash("1558618666-fcd25c85cd64"),
				unsplash("1581092918056-0c4c3acd3789"),
				unsplash("1503387762-592deb58ef4e"),
			},
		},
	},
	IndustryMedical: {
		{
			Hero: unsplash("1519494026892-80bbd2d6fd0d"),
			Gallery: []string{
				unsplash("1576091160399-112ba8d25d1d"),
				unsplash("1579684385127-1ef15d508118"),
				unsplash("1538108149393-fbbd81895907"),
			},
		},
		{
			Hero: unsplash("1629909613654-28e377c37b09"),
			Gallery: []string{
				unsplash("1551076805-e1869033e561"),
				unsplash("1582750433449-648ed127bb54"),
				unsplash("1584982751601-97dcc096659c"),
			},
		},
	},
	IndustryFitness: {
		{
			Hero: unsplash("1534438327276-14e5300c3a48"),
			Gallery: []string{
				unsplash("1571019613454-1cb2f99b2d8b"),
				unsplash("1517836357463-d25dfeac3438"),
				unsplash("1518611012118-696072aa579a"),
			},
		},
		{
			Hero: unsplash("1571902943202-507ec2618e8f"),
			Gallery: []string{
				unsplash("1540497077202-7c8a3999166f"),
				unsplash("1549060279-7e168fcee0c2"),
				unsplash("1574680096145-d05b474e2155"),
			},
		},
	},
	IndustryAutomotive: {
		{
			Hero: unsplash("1486262715619-67b85e0b08d3"),
			Gallery: []string{
				unsplash("1487754180451-c456f719a1fc"),
				unsplash("1625047509168-a7026f36de04"),
				unsplash("1632823471565-1ecdf5c6da05"),
			},
		},
		{
			Hero: unsplash("1492144534655-ae79c964c9d7"),
			Gallery: []string{
				unsplash("1503376780353-7e6692767b70"),
				unsplash("1542282088-fe8426682b8f"),
				unsplash("1552519507-da3b142c6e3d"),
			},
		},
	},
	IndustryLegal: {
		{
			Hero: unsplash("1589829545856-d10d557cf95f"),
			Gallery: []string{
				unsplash("1505664194779-8beaceb93744"),
				unsplash("1479142506502-19b3a3b7ff33"),
				unsplash("1521587760476-6c12a4b040da"),
			},
		},
		{
			Hero: unsplash("1497366216548-37526070297c"),
			Gallery: []string{
				unsplash("1497366811353-6870744d04b2"),
				unsplash("1524758631624-e2822e304c36"),
				unsplash("1431540015161-0bf868a2d407"),
			},
		},
	},
	IndustryRetail: {
		{
			Hero: unsplash("1441986300917-64674bd600d8"),
			Gallery: []string{
				unsplash("1472851294608-062f824d29cc"),
				unsplash("1534452203293-494d7ddbf7e0"),
				unsplash("1555529669-e69e7aa0ba9a"),
			},
		},
		{
			Hero: unsplash("1567401893414-76b7b1e5a7a5"),
			Gallery: []string{
				unsplash("1513584684374-8bab748fbf90"),
				unsplash("1556742049-0cfed4f6a45d"),
				unsplash("1607082348824-0a96f2a4b9da"),
			},
		},
	},
	IndustryHospitality: {
		{
			Hero: unsplash("1566073771259-6a8506099945"),
			Gallery: []string{
				unsplash("1582719478250-c89cae4dc85b"),
				unsplash("1520250497591-112f2f40a3f4"),
				unsplash("1551882547-ff40c63fe5fa"),
			},
		},
		{
			Hero: unsplash("1542314831-068cd1dbfeeb"),
			Gallery: []string{
				unsplash("1445019980597-93fa8acb246c"),
				unsplash("1584132967334-10e028bd69f7"),
				unsplash("1571003123894-1f0594d2b5d9"),
			},
		},
	},
	IndustryTech: {
		{
			Hero: unsplash("1498050108023-c5249f4df085"),
			Gallery: []string{
				unsplash("1522071820081-009f0129c71c"),
				unsplash("1531297484001-80022131f5a1"),
				unsplash("1460925895917-afdab827c52f"),
			},
		},
		{
			Hero: unsplash("1517180102446-f3ece451e9d8"),
			Gallery: []string{
				unsplash("1556761175-5973dc0f32e7"),
				unsplash("1504384308090-c894fdcc538d"),
				unsplash("1519389950473-47ba0277781c"),
			},
		},
	},
	IndustryGeneral: {
		{
			Hero: unsplash("1497032628192-86f99bcd76bc"),
			Gallery: []string{
				unsplash("1521791136064-7986c2920216"),
				unsplash("1507679799987-c73779587ccf"),
				unsplash("1454165804606-c3d57bc86b40"),
			},
		},
		{
			Hero: unsplash("1486406146926-c627a92ad1ab"),
			Gallery: []string{
				unsplash("1553877522-43269d4ea984"),
				unsplash("1552664730-d307ca884978"),
				unsplash("1519085360753-af0119f7cbe7"),
			},
		},
	},
}
