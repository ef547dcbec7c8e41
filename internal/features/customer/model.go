package customer

// Customer is static reference data loaded at startup. Records are never
// mutated; tasks keep their own snapshot of the fields they need.
type Customer struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	TCKN      string   `json:"tckn"`
	BirthDate string   `json:"birthDate"`
	Products  []string `json:"products"`
}

// Roster is the fixed customer list the agency works with.
var Roster = []Customer{
	{ID: 1, Name: "Ahmet Yilmaz", Phone: "0532 111 2233", TCKN: "12345678901", BirthDate: "1978-03-14", Products: []string{"Trafik", "Kasko"}},
	{ID: 2, Name: "Ayse Demir", Phone: "0533 222 3344", TCKN: "23456789012", BirthDate: "1985-07-22", Products: []string{"Konut", "DASK"}},
	{ID: 3, Name: "Mehmet Kaya", Phone: "0534 333 4455", TCKN: "34567890123", BirthDate: "1969-11-02", Products: []string{"Trafik", "Saglik"}},
	{ID: 4, Name: "Fatma Celik", Phone: "0535 444 5566", TCKN: "45678901234", BirthDate: "1990-01-30", Products: []string{"Kasko"}},
	{ID: 5, Name: "Mustafa Sahin", Phone: "0536 555 6677", TCKN: "56789012345", BirthDate: "1982-05-17", Products: []string{"Trafik", "Konut", "DASK"}},
	{ID: 6, Name: "Zeynep Arslan", Phone: "0537 666 7788", TCKN: "67890123456", BirthDate: "1995-09-08", Products: []string{"Saglik"}},
	{ID: 7, Name: "Ali Dogan", Phone: "0538 777 8899", TCKN: "78901234567", BirthDate: "1973-12-25", Products: []string{"Trafik"}},
	{ID: 8, Name: "Emine Kilic", Phone: "0539 888 9900", TCKN: "89012345678", BirthDate: "1988-04-11", Products: []string{"Kasko", "Ferdi Kaza"}},
	{ID: 9, Name: "Huseyin Aslan", Phone: "0541 999 0011", TCKN: "90123456789", BirthDate: "1965-08-19", Products: []string{"Trafik", "TSS"}},
	{ID: 10, Name: "Hatice Cetin", Phone: "0542 101 1122", TCKN: "11223344556", BirthDate: "1992-02-06", Products: []string{"Konut"}},
	{ID: 11, Name: "Ibrahim Koc", Phone: "0543 202 2233", TCKN: "22334455667", BirthDate: "1980-06-27", Products: []string{"Kasko", "Trafik"}},
	{ID: 12, Name: "Elif Kurt", Phone: "0544 303 3344", TCKN: "33445566778", BirthDate: "1998-10-15", Products: []string{"Saglik", "TSS"}},
	{ID: 13, Name: "Osman Ozdemir", Phone: "0545 404 4455", TCKN: "44556677889", BirthDate: "1971-03-03", Products: []string{"Trafik", "DASK"}},
	{ID: 14, Name: "Meryem Aydin", Phone: "0546 505 5566", TCKN: "55667788990", BirthDate: "1987-07-09", Products: []string{"Hayat"}},
	{ID: 15, Name: "Hasan Ozturk", Phone: "0547 606 6677", TCKN: "66778899001", BirthDate: "1960-12-01", Products: []string{"Trafik", "Kasko", "Konut"}},
	{ID: 16, Name: "Sultan Yildiz", Phone: "0548 707 7788", TCKN: "77889900112", BirthDate: "1993-05-21", Products: []string{"DASK"}},
	{ID: 17, Name: "Ismail Yildirim", Phone: "0549 808 8899", TCKN: "88990011223", BirthDate: "1976-09-30", Products: []string{"Kasko"}},
	{ID: 18, Name: "Hanife Ozkan", Phone: "0551 909 9900", TCKN: "99001122334", BirthDate: "1984-01-18", Products: []string{"Saglik", "Hayat"}},
	{ID: 19, Name: "Ramazan Simsek", Phone: "0552 121 2121", TCKN: "10111213141", BirthDate: "1968-04-24", Products: []string{"Trafik"}},
	{ID: 20, Name: "Esra Erdogan", Phone: "0553 232 3232", TCKN: "21222324252", BirthDate: "1991-08-12", Products: []string{"Konut", "Ferdi Kaza"}},
	{ID: 21, Name: "Yusuf Guler", Phone: "0554 343 4343", TCKN: "32333435363", BirthDate: "1979-11-28", Products: []string{"Trafik", "TSS"}},
	{ID: 22, Name: "Havva Tas", Phone: "0555 454 5454", TCKN: "43444546474", BirthDate: "1996-03-07", Products: []string{"Kasko"}},
	{ID: 23, Name: "Omer Aksoy", Phone: "0556 565 6565", TCKN: "54555657585", BirthDate: "1974-06-16", Products: []string{"Trafik", "Konut"}},
	{ID: 24, Name: "Zehra Avci", Phone: "0557 676 7676", TCKN: "65666768696", BirthDate: "1989-10-04", Products: []string{"Saglik"}},
	{ID: 25, Name: "Murat Polat", Phone: "0558 787 8787", TCKN: "76777879707", BirthDate: "1983-02-20", Products: []string{"Kasko", "DASK"}},
	{ID: 26, Name: "Hacer Ozer", Phone: "0559 898 9898", TCKN: "87888990818", BirthDate: "1994-07-26", Products: []string{"Hayat"}},
	{ID: 27, Name: "Suleyman Kara", Phone: "0561 919 1919", TCKN: "98990001929", BirthDate: "1966-12-13", Products: []string{"Trafik", "Kasko"}},
	{ID: 28, Name: "Rabia Kocak", Phone: "0562 020 2020", TCKN: "19181716151", BirthDate: "1997-04-02", Products: []string{"TSS"}},
	{ID: 29, Name: "Halil Acar", Phone: "0563 131 3131", TCKN: "29282726252", BirthDate: "1977-08-08", Products: []string{"Trafik", "Saglik"}},
	{ID: 30, Name: "Kadriye Duman", Phone: "0564 242 4242", TCKN: "39383736353", BirthDate: "1986-11-23", Products: []string{"Konut", "DASK", "Hayat"}},
}
